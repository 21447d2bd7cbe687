package result

type ErrorCode int

const (
	CodeOK ErrorCode = 0

	CodeGenericError ErrorCode = 10000
	CodeUnknownTx    ErrorCode = 10001
	CodeTokenLedger  ErrorCode = 10002

	// Authorization, 11000 ~ 11099
	CodeUnauthorized ErrorCode = 11000

	// State invariants, 12000 ~ 12099
	CodeAlreadyInitialized          ErrorCode = 12000
	CodeNotInitialized              ErrorCode = 12001
	CodeLaunchTimeAlreadySet        ErrorCode = 12002
	CodeLaunchTimeNotSet            ErrorCode = 12003
	CodeFeesFinalized               ErrorCode = 12004
	CodeInvalidFeePercentage        ErrorCode = 12005
	CodeFeeAlreadyApplied           ErrorCode = 12006
	CodeAlreadyExcluded             ErrorCode = 12007
	CodeNotExcluded                 ErrorCode = 12008
	CodeCannotRemoveSystemExclusion ErrorCode = 12009
	CodeInvalidKeeperAuthority      ErrorCode = 12010
	CodeInvalidTokenMint            ErrorCode = 12011
	CodeInvalidSnapshot             ErrorCode = 12012
	CodeInvalidWithdrawAmount       ErrorCode = 12013
	CodeInsufficientBalance         ErrorCode = 12014
	CodePaused                      ErrorCode = 12015
	CodeTooEarlyToUpdate            ErrorCode = 12016
	CodeUpdateCooldown              ErrorCode = 12017

	// Capacity, 13000 ~ 13099
	CodeInvalidBatchSize  ErrorCode = 13000
	CodeExclusionListFull ErrorCode = 13001

	// Arithmetic, 14000 ~ 14099
	CodeMathOverflow ErrorCode = 14000
)

var codeNames = map[ErrorCode]string{
	CodeOK:                          "OK",
	CodeGenericError:                "GenericError",
	CodeUnknownTx:                   "UnknownTx",
	CodeTokenLedger:                 "TokenLedger",
	CodeUnauthorized:                "Unauthorized",
	CodeAlreadyInitialized:          "AlreadyInitialized",
	CodeNotInitialized:              "NotInitialized",
	CodeLaunchTimeAlreadySet:        "LaunchTimeAlreadySet",
	CodeLaunchTimeNotSet:            "LaunchTimeNotSet",
	CodeFeesFinalized:               "FeesFinalized",
	CodeInvalidFeePercentage:        "InvalidFeePercentage",
	CodeFeeAlreadyApplied:           "FeeAlreadyApplied",
	CodeAlreadyExcluded:             "AlreadyExcluded",
	CodeNotExcluded:                 "NotExcluded",
	CodeCannotRemoveSystemExclusion: "CannotRemoveSystemExclusion",
	CodeInvalidKeeperAuthority:      "InvalidKeeperAuthority",
	CodeInvalidTokenMint:            "InvalidTokenMint",
	CodeInvalidSnapshot:             "InvalidSnapshot",
	CodeInvalidWithdrawAmount:       "InvalidWithdrawAmount",
	CodeInsufficientBalance:         "InsufficientBalance",
	CodePaused:                      "Paused",
	CodeTooEarlyToUpdate:            "TooEarlyToUpdate",
	CodeUpdateCooldown:              "UpdateCooldown",
	CodeInvalidBatchSize:            "InvalidBatchSize",
	CodeExclusionListFull:           "ExclusionListFull",
	CodeMathOverflow:                "MathOverflow",
}

// String returns the symbolic name of the code
func (code ErrorCode) String() string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return "Unknown"
}
