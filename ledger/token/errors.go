package token

import (
	"github.com/pkg/errors"

	"github.com/mikotoken/vault/ledger/types"
)

var (
	ErrMintNotFound       = errors.New("mint not found")
	ErrMintExists         = errors.New("mint already exists")
	ErrAccountNotFound    = types.ErrTokenAccountNotFound
	ErrAccountExists      = errors.New("token account already exists")
	ErrMintMismatch       = errors.New("token account belongs to another mint")
	ErrOwnerMismatch      = errors.New("authority does not own the source account")
	ErrAuthorityMismatch  = errors.New("authority mismatch")
	ErrDecimalsMismatch   = errors.New("decimals mismatch")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAntiSniperLimit    = errors.New("transfer exceeds the anti-sniper limit")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)
