package result

// Named failures returned by the vault executors. Use WithMessage to attach
// call details while keeping the code.
var (
	ErrUnauthorized = Result{Code: CodeUnauthorized, Message: "signer is not authorized for this operation"}

	ErrAlreadyInitialized          = Result{Code: CodeAlreadyInitialized, Message: "vault already initialized"}
	ErrNotInitialized              = Result{Code: CodeNotInitialized, Message: "vault not initialized"}
	ErrLaunchTimeAlreadySet        = Result{Code: CodeLaunchTimeAlreadySet, Message: "launch time already set"}
	ErrLaunchTimeNotSet            = Result{Code: CodeLaunchTimeNotSet, Message: "launch time not set"}
	ErrFeesFinalized               = Result{Code: CodeFeesFinalized, Message: "fee schedule already finalized"}
	ErrInvalidFeePercentage        = Result{Code: CodeInvalidFeePercentage, Message: "fee does not match the schedule"}
	ErrFeeAlreadyApplied           = Result{Code: CodeFeeAlreadyApplied, Message: "fee already applied"}
	ErrAlreadyExcluded             = Result{Code: CodeAlreadyExcluded, Message: "address already excluded"}
	ErrNotExcluded                 = Result{Code: CodeNotExcluded, Message: "address not excluded"}
	ErrCannotRemoveSystemExclusion = Result{Code: CodeCannotRemoveSystemExclusion, Message: "system address exclusion cannot be removed"}
	ErrInvalidKeeperAuthority      = Result{Code: CodeInvalidKeeperAuthority, Message: "keeper authority must differ from authority"}
	ErrInvalidTokenMint            = Result{Code: CodeInvalidTokenMint, Message: "invalid token mint"}
	ErrInvalidSnapshot             = Result{Code: CodeInvalidSnapshot, Message: "invalid holder snapshot"}
	ErrInvalidWithdrawAmount       = Result{Code: CodeInvalidWithdrawAmount, Message: "invalid withdraw amount"}
	ErrInsufficientBalance         = Result{Code: CodeInsufficientBalance, Message: "insufficient balance"}
	ErrPaused                      = Result{Code: CodePaused, Message: "vault is paused"}
	ErrTooEarlyToUpdate            = Result{Code: CodeTooEarlyToUpdate, Message: "too early to update reward token"}
	ErrUpdateCooldown              = Result{Code: CodeUpdateCooldown, Message: "reward token update is cooling down"}

	ErrInvalidBatchSize  = Result{Code: CodeInvalidBatchSize, Message: "invalid batch size"}
	ErrExclusionListFull = Result{Code: CodeExclusionListFull, Message: "exclusion list is full"}

	ErrMathOverflow = Result{Code: CodeMathOverflow, Message: "arithmetic overflow"}

	ErrTokenLedger = Result{Code: CodeTokenLedger, Message: "token ledger failure"}
	ErrUnknownTx   = Result{Code: CodeUnknownTx, Message: "unknown transaction type"}
)

// Messages carried by successful calls that had no effect.
const (
	MsgNoEligibleHolders = "NoEligibleHolders"
	MsgNothingHarvested  = "NothingHarvested"
	MsgNoRewards         = "NoRewards"
)
