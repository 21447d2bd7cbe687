package token

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/store/database/backend"
)

type testEnv struct {
	view   *state.StoreView
	ledger *Ledger
	vault  *types.VaultState
	alice  types.PublicKey
	bob    types.PublicKey
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	require := require.New(t)

	view := state.NewStoreView(backend.NewMemDatabase())
	vault := types.TestVault()
	view.SetVault(vault.TokenMint, vault)

	l := NewLedger(view, now)
	require.Nil(l.CreateMint(&types.TokenMint{
		Address:           vault.TokenMint,
		Decimals:          types.DefaultTokenDecimals,
		TransferFeeBps:    500,
		MaximumFee:        1 << 62,
		FeeAuthority:      vault.VaultAddress,
		WithdrawAuthority: vault.VaultAddress,
	}))

	alice, err := l.OpenAccount(types.MakeAddress("alice"), vault.TokenMint)
	require.Nil(err)
	bob, err := l.OpenAccount(types.MakeAddress("bob"), vault.TokenMint)
	require.Nil(err)
	require.Nil(l.MintTo(alice, 1000000))

	return &testEnv{view: view, ledger: l, vault: vault, alice: alice, bob: bob}
}

func TestTransferWithholdsFee(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env := newTestEnv(t, time.Now())
	l := env.ledger
	mint := env.vault.TokenMint

	require.Nil(l.Transfer(mint, env.alice, env.bob, types.MakeAddress("alice"), 10000, types.DefaultTokenDecimals))

	balance, _ := l.Balance(env.bob)
	withheld, _ := l.AccountWithheld(env.bob)
	assert.Equal(uint64(9500), balance)
	assert.Equal(uint64(500), withheld)

	balance, _ = l.Balance(env.alice)
	assert.Equal(uint64(990000), balance)
}

func TestTransferFeeExemptOwner(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env := newTestEnv(t, time.Now())
	l := env.ledger
	mint := env.vault.TokenMint

	treasury, err := l.OpenAccount(env.vault.Treasury, mint)
	require.Nil(err)
	require.Nil(l.Transfer(mint, env.alice, treasury, types.MakeAddress("alice"), 10000, types.DefaultTokenDecimals))

	balance, _ := l.Balance(treasury)
	withheld, _ := l.AccountWithheld(treasury)
	assert.Equal(uint64(10000), balance)
	assert.Equal(uint64(0), withheld)
}

func TestTransferRejections(t *testing.T) {
	assert := assert.New(t)

	env := newTestEnv(t, time.Now())
	l := env.ledger
	mint := env.vault.TokenMint
	alice := types.MakeAddress("alice")

	err := l.Transfer(mint, env.alice, env.bob, types.MakeAddress("bob"), 1, types.DefaultTokenDecimals)
	assert.Equal(ErrOwnerMismatch, errors.Cause(err))

	err = l.Transfer(mint, env.alice, env.bob, alice, 1, 6)
	assert.Equal(ErrDecimalsMismatch, errors.Cause(err))

	err = l.Transfer(mint, env.alice, env.bob, alice, 2000000, types.DefaultTokenDecimals)
	assert.Equal(ErrInsufficientFunds, errors.Cause(err))

	err = l.Transfer(mint, env.alice, types.MakeAddress("nowhere"), alice, 1, types.DefaultTokenDecimals)
	assert.Equal(ErrAccountNotFound, errors.Cause(err))

	err = l.Transfer(types.MakeAddress("other"), env.alice, env.bob, alice, 1, types.DefaultTokenDecimals)
	assert.Equal(ErrMintNotFound, errors.Cause(err))
}

func TestAntiSniperHook(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	launch := time.Unix(1700000000, 0)
	env := newTestEnv(t, launch.Add(100*time.Second))
	mint := env.vault.TokenMint
	alice := types.MakeAddress("alice")

	m := env.ledger.GetMint(mint)
	m.AntiSniper = true
	env.view.SetTokenMint(m)
	env.vault.LaunchTimestamp = types.Unix(launch)
	env.view.SetVault(mint, env.vault)

	// Supply is 1,000,000 so the cap is 10,000.
	require.Nil(env.ledger.Transfer(mint, env.alice, env.bob, alice, 10000, types.DefaultTokenDecimals))
	err := env.ledger.Transfer(mint, env.alice, env.bob, alice, 10001, types.DefaultTokenDecimals)
	assert.Equal(ErrAntiSniperLimit, errors.Cause(err))

	later := NewLedger(env.view, launch.Add(types.AntiSniperWindow))
	assert.Nil(later.Transfer(mint, env.alice, env.bob, alice, 10001, types.DefaultTokenDecimals))
}

func TestHarvestAndWithdrawWithheld(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env := newTestEnv(t, time.Now())
	l := env.ledger
	mint := env.vault.TokenMint
	alice := types.MakeAddress("alice")

	require.Nil(l.Transfer(mint, env.alice, env.bob, alice, 10000, types.DefaultTokenDecimals))

	moved, err := l.HarvestWithheld(mint, []types.PublicKey{env.alice, env.bob})
	require.Nil(err)
	assert.Equal(uint64(500), moved)
	withheld, _ := l.WithheldAmount(mint)
	assert.Equal(uint64(500), withheld)

	moved, err = l.HarvestWithheld(mint, []types.PublicKey{env.bob})
	require.Nil(err)
	assert.Equal(uint64(0), moved)

	custody, err := l.OpenAccount(env.vault.VaultAddress, mint)
	require.Nil(err)

	_, err = l.WithdrawWithheldFromMint(mint, custody, alice)
	assert.Equal(ErrAuthorityMismatch, errors.Cause(err))

	amount, err := l.WithdrawWithheldFromMint(mint, custody, env.vault.VaultAddress)
	require.Nil(err)
	assert.Equal(uint64(500), amount)
	balance, _ := l.Balance(custody)
	assert.Equal(uint64(500), balance)

	require.Nil(l.Transfer(mint, env.alice, env.bob, alice, 20000, types.DefaultTokenDecimals))
	amount, err = l.WithdrawWithheldFromAccounts(mint, custody, env.vault.VaultAddress, []types.PublicKey{env.bob})
	require.Nil(err)
	assert.Equal(uint64(1000), amount)
	balance, _ = l.Balance(custody)
	assert.Equal(uint64(1500), balance)
}

func TestSetTransferFee(t *testing.T) {
	assert := assert.New(t)

	env := newTestEnv(t, time.Now())
	mint := env.vault.TokenMint

	err := env.ledger.SetTransferFee(mint, types.MakeAddress("alice"), 3000, 100)
	assert.Equal(ErrAuthorityMismatch, errors.Cause(err))

	assert.Nil(env.ledger.SetTransferFee(mint, env.vault.VaultAddress, 3000, 100))
	m := env.ledger.GetMint(mint)
	assert.Equal(uint16(3000), m.TransferFeeBps)
	assert.Equal(uint64(100), m.MaximumFee)
}

func TestNativeTransfers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env := newTestEnv(t, time.Now())
	l := env.ledger
	from, to := types.MakeAddress("from"), types.MakeAddress("to")

	require.Nil(l.Airdrop(from, 100))
	require.Nil(l.TransferNative(from, to, 60))

	b, _ := l.NativeBalance(from)
	assert.Equal(uint64(40), b)
	b, _ = l.NativeBalance(to)
	assert.Equal(uint64(60), b)

	err := l.TransferNative(from, to, 41)
	assert.Equal(ErrInsufficientFunds, errors.Cause(err))
}
