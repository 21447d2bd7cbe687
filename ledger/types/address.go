package types

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// PublicKey is a 32 byte account address.
type PublicKey = solana.PublicKey

var (
	// ZeroAddress is the unset address.
	ZeroAddress = PublicKey{}

	// DefaultProgramID is the vault program the custody address derives from.
	DefaultProgramID = solana.MustPublicKeyFromBase58("C4N6rHoUxrFoXPnythgDY6qWNKsPqtcqLfwrdruV2mK4")

	// Token2022ProgramID owns mints carrying the transfer fee extension.
	Token2022ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

	// NativeMint marks native SOL as a reward token or withdrawal asset.
	NativeMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

// VaultSeed is the PDA seed of the vault record.
var VaultSeed = []byte("vault")

// FindVaultAddress derives the custody PDA of the vault for mint.
func FindVaultAddress(programID, mint PublicKey) (PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{VaultSeed, mint[:]}, programID)
	if err != nil {
		return ZeroAddress, 0, errors.Wrapf(err, "failed to derive vault address for mint %v", mint)
	}
	return addr, bump, nil
}

// AssociatedTokenAddress derives the Token-2022 associated token account of
// wallet for mint.
func AssociatedTokenAddress(wallet, mint PublicKey) (PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{wallet[:], Token2022ProgramID[:], mint[:]},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	if err != nil {
		return ZeroAddress, errors.Wrapf(err, "failed to derive token account of %v for mint %v", wallet, mint)
	}
	return addr, nil
}

// MustAssociatedTokenAddress is AssociatedTokenAddress that panics on failure.
func MustAssociatedTokenAddress(wallet, mint PublicKey) PublicKey {
	addr, err := AssociatedTokenAddress(wallet, mint)
	if err != nil {
		panic(err)
	}
	return addr
}

// MakeAddress returns a deterministic address derived from seed.
func MakeAddress(seed string) PublicKey {
	hash := sha256.Sum256([]byte(seed))
	return solana.PublicKeyFromBytes(hash[:])
}

// ParseAddress decodes a base58 address.
func ParseAddress(s string) (PublicKey, error) {
	addr, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return ZeroAddress, errors.Wrapf(err, "invalid address %q", s)
	}
	return addr, nil
}
