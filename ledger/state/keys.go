package state

import "github.com/mikotoken/vault/ledger/types"

//
// ------------------------- Ledger State Keys -------------------------
//

// VaultKey constructs the state key of the vault record of mint
func VaultKey(mint types.PublicKey) []byte {
	return append([]byte("ls/v/"), mint[:]...)
}

// PoolRegistryKey constructs the state key of the pool registry of a vault
func PoolRegistryKey(vault types.PublicKey) []byte {
	return append([]byte("ls/pr/"), vault[:]...)
}

// DialStateKey constructs the state key of the reward token scheduler of mint
func DialStateKey(mint types.PublicKey) []byte {
	return append([]byte("ls/d/"), mint[:]...)
}

// TokenMintKey constructs the state key of a mint of the reference token ledger
func TokenMintKey(mint types.PublicKey) []byte {
	return append([]byte("tk/m/"), mint[:]...)
}

// TokenAccountKey constructs the state key of a token account
func TokenAccountKey(account types.PublicKey) []byte {
	return append([]byte("tk/a/"), account[:]...)
}

// NativeAccountKey constructs the state key of a native balance
func NativeAccountKey(addr types.PublicKey) []byte {
	return append([]byte("tk/n/"), addr[:]...)
}
