package types

import "github.com/pkg/errors"

// ErrTokenAccountNotFound is returned, possibly wrapped, by a TokenLedger for
// an account that was never opened.
var ErrTokenAccountNotFound = errors.New("token account not found")

// TokenLedger is the token layer the vault runs against. The vault reads
// balances and withheld amounts and asks it to move value. Every failure
// aborts the vault call that triggered it.
type TokenLedger interface {
	// HarvestWithheld moves the withheld fees of accounts into the mint and
	// returns the amount moved. Accounts without withheld fees are skipped.
	HarvestWithheld(mint PublicKey, accounts []PublicKey) (uint64, error)

	// WithdrawWithheldFromMint moves the mint level withheld pool to the
	// destination token account, signed by authority.
	WithdrawWithheldFromMint(mint, destination, authority PublicKey) (uint64, error)

	// WithdrawWithheldFromAccounts moves the withheld fees of accounts straight
	// to the destination token account, signed by authority.
	WithdrawWithheldFromAccounts(mint, destination, authority PublicKey, accounts []PublicKey) (uint64, error)

	// Transfer moves amount of mint between token accounts, signed by authority.
	Transfer(mint, from, to, authority PublicKey, amount uint64, decimals uint8) error

	// WithheldAmount returns the mint level withheld pool.
	WithheldAmount(mint PublicKey) (uint64, error)

	// AccountWithheld returns the fees withheld in a token account.
	AccountWithheld(account PublicKey) (uint64, error)

	// Balance returns the amount held by a token account.
	Balance(account PublicKey) (uint64, error)

	// Decimals returns the decimals of mint.
	Decimals(mint PublicKey) (uint8, error)

	// SetTransferFee changes the transfer fee of mint, signed by authority.
	SetTransferFee(mint, authority PublicKey, feeBps uint16, maxFee uint64) error

	// NativeBalance returns the native balance of addr.
	NativeBalance(addr PublicKey) (uint64, error)

	// TransferNative moves native value from a vault owned address.
	TransferNative(from, to PublicKey, amount uint64) error
}

// RewardTokenSource supplies the reward token currently selected by the
// scheduler.
type RewardTokenSource interface {
	CurrentRewardToken() (PublicKey, error)
}
