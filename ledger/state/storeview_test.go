package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/store/database/backend"
)

func TestStoreViewGetSetDelete(t *testing.T) {
	assert := assert.New(t)

	db := backend.NewMemDatabase()
	sv := NewStoreView(db)

	k1, v1 := []byte("key1"), []byte("value1")
	sv.Set(k1, v1)
	assert.Equal(v1, sv.Get(k1))
	assert.True(sv.Dirty())

	v1[0] = 'X'
	assert.Equal([]byte("value1"), sv.Get(k1))

	sv.Delete(k1)
	assert.Nil(sv.Get(k1))
	assert.Nil(sv.Get([]byte("missing")))
}

func TestStoreViewCopyMerge(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	db := backend.NewMemDatabase()
	root := NewStoreView(db)
	root.Set([]byte("a"), []byte("1"))
	root.Set([]byte("b"), []byte("2"))

	child := root.Copy()
	assert.Equal([]byte("1"), child.Get([]byte("a")))

	child.Set([]byte("a"), []byte("10"))
	child.Delete([]byte("b"))
	child.Set([]byte("c"), []byte("3"))

	assert.Equal([]byte("1"), root.Get([]byte("a")))
	assert.Equal([]byte("2"), root.Get([]byte("b")))
	assert.Nil(root.Get([]byte("c")))

	require.Nil(root.Merge(child))
	assert.Equal([]byte("10"), root.Get([]byte("a")))
	assert.Nil(root.Get([]byte("b")))
	assert.Equal([]byte("3"), root.Get([]byte("c")))

	other := NewStoreView(db)
	assert.NotNil(other.Merge(root.Copy().Copy()))
}

func TestStoreViewSave(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	db := backend.NewMemDatabase()
	root := NewStoreView(db)
	root.Set([]byte("a"), []byte("1"))
	root.Set([]byte("b"), []byte("2"))
	require.Nil(root.Save())
	assert.False(root.Dirty())
	assert.Equal(2, db.Len())

	root.Delete([]byte("a"))
	require.Nil(root.Save())
	assert.Equal(1, db.Len())

	fresh := NewStoreView(db)
	assert.Nil(fresh.Get([]byte("a")))
	assert.Equal([]byte("2"), fresh.Get([]byte("b")))

	assert.NotNil(root.Copy().Save())
}

func TestStoreViewRecords(t *testing.T) {
	assert := assert.New(t)

	sv := NewStoreView(backend.NewMemDatabase())
	vault := types.TestVault()

	assert.Nil(sv.GetVault(vault.TokenMint))
	sv.SetVault(vault.TokenMint, vault)
	got := sv.GetVault(vault.TokenMint)
	assert.NotNil(got)
	assert.Equal(vault.Authority, got.Authority)
	assert.Equal(len(vault.Exclusions), len(got.Exclusions))

	// Decoded records are independent of the stored bytes.
	got.Paused = true
	assert.False(sv.GetVault(vault.TokenMint).Paused)

	assert.Nil(sv.GetPoolRegistry(vault.VaultAddress))
	registry := &types.PoolRegistry{Vault: vault.VaultAddress}
	registry.Add([]types.PublicKey{types.MakeAddress("pool1")})
	sv.SetPoolRegistry(vault.VaultAddress, registry)
	assert.True(sv.GetPoolRegistry(vault.VaultAddress).Contains(types.MakeAddress("pool1")))

	native := sv.GetNativeAccount(vault.VaultAddress)
	assert.Equal(vault.VaultAddress, native.Address)
	assert.Equal(uint64(0), native.Lamports)
	native.Lamports = 42
	sv.SetNativeAccount(native)
	assert.Equal(uint64(42), sv.GetNativeAccount(vault.VaultAddress).Lamports)
}

func TestStoreViewCorruptedRecordPanics(t *testing.T) {
	sv := NewStoreView(backend.NewMemDatabase())
	mint := types.MakeAddress("mint")
	sv.Set(VaultKey(mint), []byte{0xff, 0x01})
	assert.Panics(t, func() { sv.GetVault(mint) })
}
