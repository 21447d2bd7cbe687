package execution

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
)

func TestManageExclusions(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	wallet := types.MakeAddress("market-maker")

	add := func(kind types.ExclusionKind) result.Result {
		return et.exec(&types.ManageExclusionsTx{Signer: et.authority, Mint: et.mint, Action: types.ExclusionAdd, Kind: kind, Wallet: wallet})
	}
	remove := func(kind types.ExclusionKind) result.Result {
		return et.exec(&types.ManageExclusionsTx{Signer: et.authority, Mint: et.mint, Action: types.ExclusionRemove, Kind: kind, Wallet: wallet})
	}

	assert.Equal(result.CodeNotExcluded, remove(types.ExclusionFee).Code)

	assert.True(add(types.ExclusionFee).IsOK())
	assert.True(et.vault().IsFeeExcluded(wallet))
	assert.False(et.vault().IsRewardExcluded(wallet))
	assert.Equal(result.CodeAlreadyExcluded, add(types.ExclusionFee).Code)

	assert.True(add(types.ExclusionBoth).IsOK())
	assert.True(et.vault().IsRewardExcluded(wallet))

	assert.True(remove(types.ExclusionFee).IsOK())
	assert.False(et.vault().IsFeeExcluded(wallet))
	assert.True(et.vault().IsRewardExcluded(wallet))

	assert.True(remove(types.ExclusionBoth).IsOK())
	assert.Equal(6, len(et.vault().Exclusions))

	res := et.exec(&types.ManageExclusionsTx{Signer: et.keeper, Mint: et.mint, Action: types.ExclusionAdd, Kind: types.ExclusionFee, Wallet: wallet})
	assert.Equal(result.CodeUnauthorized, res.Code)
}

func TestSystemExclusionsCannotBeRemoved(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	for _, addr := range et.vault().SystemAddresses() {
		for _, kind := range []types.ExclusionKind{types.ExclusionFee, types.ExclusionReward, types.ExclusionBoth} {
			res := et.exec(&types.ManageExclusionsTx{Signer: et.authority, Mint: et.mint, Action: types.ExclusionRemove, Kind: kind, Wallet: addr})
			assert.Equal(result.CodeCannotRemoveSystemExclusion, res.Code, "%v %v", addr, kind)
		}
		res := et.exec(&types.ManageExclusionsTx{Signer: et.authority, Mint: et.mint, Action: types.ExclusionAdd, Kind: types.ExclusionFee, Wallet: addr})
		assert.Equal(result.CodeCannotRemoveSystemExclusion, res.Code)
	}
	assert.Equal(6, len(et.vault().Exclusions))
}

func TestExclusionListFull(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	for i := len(et.vault().Exclusions); i < types.MaxExclusions; i++ {
		res := et.exec(&types.ManageExclusionsTx{Signer: et.authority, Mint: et.mint, Action: types.ExclusionAdd, Kind: types.ExclusionReward, Wallet: types.MakeAddress(fmt.Sprintf("w%v", i))})
		assert.True(res.IsOK(), res.String())
	}
	res := et.exec(&types.ManageExclusionsTx{Signer: et.authority, Mint: et.mint, Action: types.ExclusionAdd, Kind: types.ExclusionReward, Wallet: types.MakeAddress("one-too-many")})
	assert.Equal(result.CodeExclusionListFull, res.Code)
	assert.Equal(types.MaxExclusions, len(et.vault().Exclusions))
}

func TestUpdateConfig(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	newKeeper := types.MakeAddress("new-keeper")

	res := et.exec(&types.UpdateConfigTx{Signer: et.keeper, Mint: et.mint, NewKeeperAuthority: &newKeeper})
	assert.Equal(result.CodeUnauthorized, res.Code)

	res = et.exec(&types.UpdateConfigTx{Signer: et.authority, Mint: et.mint, NewKeeperAuthority: &et.authority})
	assert.Equal(result.CodeInvalidKeeperAuthority, res.Code)

	res = et.exec(&types.UpdateConfigTx{Signer: et.authority, Mint: et.mint, NewKeeperAuthority: types.AddressPtr(types.ZeroAddress)})
	assert.Equal(result.CodeGenericError, res.Code)

	res = et.exec(&types.UpdateConfigTx{
		Signer:              et.authority,
		Mint:                et.mint,
		NewKeeperAuthority:  &newKeeper,
		NewMinHoldAmount:    types.Uint64Ptr(42),
		NewHarvestThreshold: types.Uint64Ptr(7),
	})
	assert.True(res.IsOK(), res.String())

	vault := et.vault()
	assert.Equal(newKeeper, vault.KeeperAuthority)
	assert.Equal(uint64(42), vault.MinHoldAmount)
	assert.Equal(uint64(7), vault.HarvestThreshold)
	assert.True(vault.IsFeeExcluded(newKeeper))
	assert.True(vault.IsSystemAddress(newKeeper))
	// The former keeper keeps its exclusion but loses its protection.
	assert.True(vault.IsFeeExcluded(et.keeper))
	assert.False(vault.IsSystemAddress(et.keeper))

	alice := et.holder("alice", 1000)
	res = et.exec(&types.HarvestFeesTx{Signer: et.keeper, Mint: et.mint, Accounts: []types.PublicKey{alice}})
	assert.Equal(result.CodeUnauthorized, res.Code)
	res = et.exec(&types.HarvestFeesTx{Signer: newKeeper, Mint: et.mint, Accounts: []types.PublicKey{alice}})
	assert.True(res.IsOK(), res.String())
}

func TestTransferAuthority(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	newAuthority := types.MakeAddress("new-authority")

	res := et.exec(&types.UpdateConfigTx{Signer: et.authority, Mint: et.mint, NewAuthority: &newAuthority})
	assert.True(res.IsOK(), res.String())

	paused := types.BoolPtr(true)
	res = et.exec(&types.UpdateConfigTx{Signer: et.authority, Mint: et.mint, Paused: paused})
	assert.Equal(result.CodeUnauthorized, res.Code)
	res = et.exec(&types.UpdateConfigTx{Signer: newAuthority, Mint: et.mint, Paused: paused})
	assert.True(res.IsOK(), res.String())
	assert.True(et.vault().Paused)
}

func TestEmergencyWithdraw(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	et := newExecTest(t)
	et.fundNative(1000)
	et.tokens(func(l *token.Ledger) {
		require.Nil(l.MintTo(et.custody, 5000))
	})
	destination := et.holder("rescue", 0)

	res := et.exec(&types.EmergencyWithdrawTx{Signer: et.keeper, Mint: et.mint, Asset: et.mint, Destination: destination, Amount: 1})
	assert.Equal(result.CodeUnauthorized, res.Code)

	res = et.exec(&types.EmergencyWithdrawTx{Signer: et.authority, Mint: et.mint, Asset: et.mint, Destination: destination})
	assert.Equal(result.CodeInvalidWithdrawAmount, res.Code)

	res = et.exec(&types.EmergencyWithdrawTx{Signer: et.authority, Mint: et.mint, Asset: et.mint, Destination: destination, Amount: 5001})
	assert.Equal(result.CodeInsufficientBalance, res.Code)

	res = et.exec(&types.EmergencyWithdrawTx{Signer: et.authority, Mint: et.mint, Asset: et.mint, Destination: destination, Amount: 2000})
	assert.True(res.IsOK(), res.String())
	assert.Equal(uint64(2000), et.balance(destination))
	assert.Equal(uint64(3000), et.balance(et.custody))

	res = et.exec(&types.EmergencyWithdrawTx{Signer: et.authority, Mint: et.mint, Asset: types.NativeMint, Destination: et.authority, All: true})
	assert.True(res.IsOK(), res.String())
	assert.Equal(uint64(1000), et.native(et.authority))
	assert.Equal(uint64(0), et.native(et.vaultAddr))

	res = et.exec(&types.EmergencyWithdrawTx{Signer: et.authority, Mint: et.mint, Asset: types.NativeMint, Destination: et.authority, All: true})
	assert.True(res.IsOK(), res.String())

	vault := et.vault()
	assert.Equal(uint64(0), vault.TotalFeesHarvested)
	assert.Equal(uint64(0), vault.TotalRewardsDistributed)
}

func TestEmergencyWithdrawWithheld(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	et.holder("alice", 1000000)
	bob := et.holder("bob", 0)
	destination := et.holder("rescue", 0)
	et.transfer("alice", "bob", 10000)

	res := et.exec(&types.EmergencyWithdrawWithheldTx{Signer: et.keeper, Mint: et.mint, Accounts: []types.PublicKey{bob}, Destination: destination})
	assert.Equal(result.CodeUnauthorized, res.Code)

	accounts := make([]types.PublicKey, types.MaxHarvestBatch+1)
	for i := range accounts {
		accounts[i] = bob
	}
	res = et.exec(&types.EmergencyWithdrawWithheldTx{Signer: et.authority, Mint: et.mint, Accounts: accounts, Destination: destination})
	assert.Equal(result.CodeInvalidBatchSize, res.Code)

	res = et.exec(&types.EmergencyWithdrawWithheldTx{Signer: et.authority, Mint: et.mint, Accounts: []types.PublicKey{bob}, Destination: destination})
	assert.True(res.IsOK(), res.String())
	assert.Equal(uint64(500), et.balance(destination))
	assert.Equal(uint64(0), mustWithheld(t, et, bob))
	assert.Equal(uint64(0), et.balance(et.ata(et.owner)))
	assert.Equal(uint64(0), et.vault().TotalFeesHarvested)
}

func TestUpdatePoolRegistry(t *testing.T) {
	assert := assert.New(t)

	et := newExecTest(t)
	pool := types.MakeAddress("pool")

	res := et.exec(&types.UpdatePoolRegistryTx{Signer: et.authority, Mint: et.mint, Pools: []types.PublicKey{pool}})
	assert.Equal(result.CodeUnauthorized, res.Code)

	res = et.exec(&types.UpdatePoolRegistryTx{Signer: et.keeper, Mint: et.mint})
	assert.Equal(result.CodeInvalidBatchSize, res.Code)

	pools := []types.PublicKey{pool, pool, types.ZeroAddress}
	for i := 0; i < types.MaxPools+5; i++ {
		pools = append(pools, types.MakeAddress(fmt.Sprintf("pool%v", i)))
	}
	res = et.exec(&types.UpdatePoolRegistryTx{Signer: et.keeper, Mint: et.mint, Pools: pools})
	assert.True(res.IsOK(), res.String())

	registry := et.state.Delivered().GetPoolRegistry(et.vaultAddr)
	assert.Equal(types.MaxPools, len(registry.Pools))
	assert.True(registry.Contains(pool))
}

func TestUnknownTx(t *testing.T) {
	et := newExecTest(t)
	res := et.exec(nil)
	assert.Equal(t, result.CodeUnknownTx, res.Code)
}
