package execution

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger/dial"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/store/database/backend"
)

// 2024-01-03 is a Wednesday.
var testLaunch = time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)

const testMinHold = uint64(100)

type execTest struct {
	t        *testing.T
	state    *st.LedgerState
	executor *Executor
	now      time.Time

	authority types.PublicKey
	keeper    types.PublicKey
	owner     types.PublicKey
	treasury  types.PublicKey
	mint      types.PublicKey
	vaultAddr types.PublicKey
	custody   types.PublicKey
}

func newExecTest(t *testing.T) *execTest {
	require := require.New(t)

	et := &execTest{
		t:         t,
		state:     st.NewLedgerState(backend.NewMemDatabase()),
		executor:  NewExecutor(types.DefaultProgramID, math.MaxUint64),
		now:       testLaunch.Add(-time.Hour),
		authority: types.MakeAddress("authority"),
		keeper:    types.MakeAddress("keeper"),
		owner:     types.MakeAddress("owner"),
		treasury:  types.MakeAddress("treasury"),
		mint:      types.MakeAddress("mint"),
	}
	vaultAddr, _, err := types.FindVaultAddress(types.DefaultProgramID, et.mint)
	require.Nil(err)
	et.vaultAddr = vaultAddr

	et.tokens(func(l *token.Ledger) {
		require.Nil(l.CreateMint(&types.TokenMint{
			Address:           et.mint,
			Decimals:          types.DefaultTokenDecimals,
			TransferFeeBps:    500,
			MaximumFee:        math.MaxUint64,
			FeeAuthority:      vaultAddr,
			WithdrawAuthority: vaultAddr,
		}))
	})

	res := et.exec(&types.InitializeTx{
		Signer:          et.authority,
		Mint:            et.mint,
		Authority:       et.authority,
		KeeperAuthority: et.keeper,
		OwnerWallet:     et.owner,
		Treasury:        et.treasury,
		MinHoldAmount:   testMinHold,
	})
	require.True(res.IsOK(), res.String())

	et.tokens(func(l *token.Ledger) {
		et.custody, err = l.OpenAccount(vaultAddr, et.mint)
		require.Nil(err)
		_, err = l.OpenAccount(et.owner, et.mint)
		require.Nil(err)
		_, err = l.OpenAccount(et.treasury, et.mint)
		require.Nil(err)
	})
	return et
}

// exec runs tx on a scratch view and commits it when accepted
func (et *execTest) exec(tx types.Tx) result.Result {
	scratch := et.state.Checkout()
	ctx := &CallContext{
		Now:          et.now,
		Tokens:       token.NewLedger(scratch, et.now),
		RewardSource: dial.NewSource(scratch, et.mint),
	}
	res := et.executor.ExecuteTx(ctx, scratch, tx)
	if res.IsOK() {
		require.Nil(et.t, et.state.Commit(scratch))
	}
	return res
}

// tokens applies setup operations to the reference token ledger
func (et *execTest) tokens(fn func(l *token.Ledger)) {
	scratch := et.state.Checkout()
	fn(token.NewLedger(scratch, et.now))
	require.Nil(et.t, et.state.Commit(scratch))
}

func (et *execTest) reader() *token.Ledger {
	return token.NewLedger(et.state.Delivered(), et.now)
}

func (et *execTest) vault() *types.VaultState {
	return et.state.Delivered().GetVault(et.mint)
}

func (et *execTest) launch() {
	et.now = testLaunch
	res := et.exec(&types.SetLaunchTimeTx{Signer: types.MakeAddress("anyone"), Mint: et.mint})
	require.True(et.t, res.IsOK(), res.String())
}

// holder opens a funded token account of the taxed mint for name
func (et *execTest) holder(name string, amount uint64) types.PublicKey {
	var account types.PublicKey
	et.tokens(func(l *token.Ledger) {
		var err error
		account, err = l.OpenAccount(types.MakeAddress(name), et.mint)
		require.Nil(et.t, err)
		if amount > 0 {
			require.Nil(et.t, l.MintTo(account, amount))
		}
	})
	return account
}

// transfer moves amount between two holders, withholding the transfer fee
func (et *execTest) transfer(from, to string, amount uint64) {
	et.tokens(func(l *token.Ledger) {
		src := types.MustAssociatedTokenAddress(types.MakeAddress(from), et.mint)
		dst := types.MustAssociatedTokenAddress(types.MakeAddress(to), et.mint)
		require.Nil(et.t, l.Transfer(et.mint, src, dst, types.MakeAddress(from), amount, types.DefaultTokenDecimals))
	})
}

func (et *execTest) balance(account types.PublicKey) uint64 {
	balance, err := et.reader().Balance(account)
	require.Nil(et.t, err)
	return balance
}

func (et *execTest) ata(wallet types.PublicKey) types.PublicKey {
	return types.MustAssociatedTokenAddress(wallet, et.mint)
}

func (et *execTest) native(addr types.PublicKey) uint64 {
	balance, err := et.reader().NativeBalance(addr)
	require.Nil(et.t, err)
	return balance
}
