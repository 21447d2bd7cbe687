package keeper

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/metrics"
	"github.com/mikotoken/vault/store/database/backend"
	"github.com/mikotoken/vault/store/kvstore"
)

var (
	authority = types.MakeAddress("authority")
	keeperKey = types.MakeAddress("keeper")
	owner     = types.MakeAddress("owner")
	treasury  = types.MakeAddress("treasury")
	mint      = types.MakeAddress("mint")
	whale     = types.MakeAddress("whale")
)

type keeperTest struct {
	t      *testing.T
	ledger *ledger.Ledger
	clock  *clockwork.FakeClock
	keeper *Keeper
	vault  types.PublicKey
}

func newKeeperTest(t *testing.T, config Config) *keeperTest {
	require := require.New(t)

	clock := clockwork.NewFakeClockAt(time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC))
	db := backend.NewMemDatabase()
	l := ledger.NewLedger(db, clock, types.DefaultProgramID, math.MaxUint64)

	vaultAddr, _, err := types.FindVaultAddress(types.DefaultProgramID, mint)
	require.Nil(err)
	require.Nil(l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		if err := tokens.CreateMint(&types.TokenMint{
			Address:           mint,
			Decimals:          types.DefaultTokenDecimals,
			TransferFeeBps:    500,
			MaximumFee:        math.MaxUint64,
			FeeAuthority:      vaultAddr,
			WithdrawAuthority: vaultAddr,
		}); err != nil {
			return err
		}
		account, err := tokens.OpenAccount(whale, mint)
		if err != nil {
			return err
		}
		return tokens.MintTo(account, 1_000_000_000)
	}))

	res := l.Execute(&types.InitializeTx{
		Signer:          authority,
		Mint:            mint,
		Authority:       authority,
		KeeperAuthority: keeperKey,
		OwnerWallet:     owner,
		Treasury:        treasury,
		MinHoldAmount:   100,
	})
	require.True(res.IsOK(), res.String())
	require.Nil(l.OpenVaultAccounts(mint))

	reports := NewReportStore(kvstore.NewKVStore(db))
	k := NewKeeper(l, keeperKey, mint, nil, reports, config)
	return &keeperTest{t: t, ledger: l, clock: clock, keeper: k, vault: vaultAddr}
}

func (kt *keeperTest) exec(tx types.Tx) {
	res := kt.ledger.Execute(tx)
	require.True(kt.t, res.IsOK(), res.String())
}

func (kt *keeperTest) setThreshold(threshold uint64) {
	kt.exec(&types.UpdateConfigTx{Signer: authority, Mint: mint, NewHarvestThreshold: types.Uint64Ptr(threshold)})
}

// fund sends amount from the whale to each wallet, returning their token accounts.
func (kt *keeperTest) fund(wallets []types.PublicKey, amount uint64) []types.PublicKey {
	var accounts []types.PublicKey
	require.Nil(kt.t, kt.ledger.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		from := types.MustAssociatedTokenAddress(whale, mint)
		for _, wallet := range wallets {
			to, err := tokens.OpenAccount(wallet, mint)
			if err != nil {
				return err
			}
			if err := tokens.Transfer(mint, from, to, whale, amount, types.DefaultTokenDecimals); err != nil {
				return err
			}
			accounts = append(accounts, to)
		}
		return nil
	}))
	return accounts
}

func (kt *keeperTest) airdropVault(lamports uint64) {
	require.Nil(kt.t, kt.ledger.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		return tokens.Airdrop(kt.vault, lamports)
	}))
}

func (kt *keeperTest) native(addr types.PublicKey) uint64 {
	var balance uint64
	kt.ledger.Query(func(view *st.StoreView, tokens *token.Ledger) {
		balance, _ = tokens.NativeBalance(addr)
	})
	return balance
}

func wallets(n int) []types.PublicKey {
	out := make([]types.PublicKey, n)
	for i := range out {
		out[i] = types.MakeAddress(fmt.Sprintf("holder-%v", i))
	}
	return out
}

func TestHarvestAllBelowThreshold(t *testing.T) {
	assert := assert.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	accounts := kt.fund(wallets(3), 10000)

	report, err := kt.keeper.HarvestAll(accounts)
	assert.Nil(err)
	assert.Equal(metrics.VStatusSkipped, report.Status)
	assert.Equal(uint64(0), report.Calls)
	assert.Equal(uint64(0), kt.ledger.GetVault(mint).TotalFeesHarvested)
}

func TestHarvestAllBatches(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	kt.setThreshold(1)
	accounts := kt.fund(wallets(25), 10000)

	// Unknown and repeated accounts are dropped before submission.
	input := append([]types.PublicKey{types.MakeAddress("nobody")}, accounts...)
	input = append(input, accounts[0])

	report, err := kt.keeper.HarvestAll(input)
	require.Nil(err)
	assert.Equal(metrics.VStatusOK, report.Status)
	assert.Equal(uint64(2), report.Calls)
	assert.Equal(uint64(25), report.NextIndex)
	assert.Equal(uint64(25*500), report.Amount)
	assert.Equal(uint64(25*500), kt.ledger.GetVault(mint).TotalFeesHarvested)

	last, err := kt.keeper.LastReport(TaskHarvest)
	require.Nil(err)
	require.NotNil(last)
	assert.Equal(report.Amount, last.Amount)
	assert.Equal(metrics.VStatusOK, last.Status)

	// Nothing is pending after the round.
	report, err = kt.keeper.HarvestAll(accounts)
	assert.Nil(err)
	assert.Equal(metrics.VStatusSkipped, report.Status)
}

func TestHarvestAllSmallBatchSize(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.HarvestBatchSize = 4
	kt := newKeeperTest(t, config)
	kt.setThreshold(1)
	accounts := kt.fund(wallets(9), 10000)

	report, err := kt.keeper.HarvestAll(accounts)
	assert.Nil(err)
	assert.Equal(uint64(3), report.Calls)
	assert.Equal(uint64(9*500), report.Amount)
}

func TestHarvestAllStopsAtRejectedBatch(t *testing.T) {
	assert := assert.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	kt.setThreshold(1)
	accounts := kt.fund(wallets(3), 10000)
	kt.exec(&types.UpdateConfigTx{Signer: authority, Mint: mint, Paused: types.BoolPtr(true)})

	report, err := kt.keeper.HarvestAll(accounts)
	assert.NotNil(err)
	res, ok := err.(result.Result)
	assert.True(ok)
	assert.Equal(result.CodePaused, res.Code)
	assert.Equal(metrics.VStatusFailed, report.Status)
	assert.Equal(uint64(1), report.Calls)
	assert.Equal(uint64(0), report.NextIndex)

	last, lerr := kt.keeper.LastReport(TaskHarvest)
	assert.Nil(lerr)
	assert.Equal(metrics.VStatusFailed, last.Status)
}

func TestDistributeAll(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	kt.airdropVault(1_000_000)

	holders := wallets(20)
	snapshot := make([]types.HolderSnapshotEntry, 0, len(holders)+2)
	total := uint64(0)
	for i, wallet := range holders {
		balance := uint64(1000 * (i + 1))
		total += balance
		snapshot = append(snapshot, types.HolderSnapshotEntry{Wallet: wallet, Balance: balance})
	}
	// Below the minimum hold and a system address, both unpaid.
	snapshot = append(snapshot,
		types.HolderSnapshotEntry{Wallet: types.MakeAddress("dust"), Balance: 50},
		types.HolderSnapshotEntry{Wallet: treasury, Balance: 1_000_000},
	)

	report, err := kt.keeper.DistributeAll(snapshot)
	require.Nil(err)
	assert.Equal(metrics.VStatusOK, report.Status)
	assert.Equal(uint64(2), report.Calls)
	assert.Equal(uint64(len(snapshot)), report.NextIndex)
	assert.Equal(uint64(20), report.Recipients)

	paid := uint64(0)
	for i, wallet := range holders {
		expected := uint64(1000*(i+1)) * 1_000_000 / total
		assert.Equal(expected, kt.native(wallet), wallet.String())
		paid += expected
	}
	assert.Equal(paid, report.Amount)
	assert.Equal(uint64(0), kt.native(types.MakeAddress("dust")))
	assert.Equal(uint64(0), kt.native(treasury))
	assert.Equal(1_000_000-paid, kt.native(kt.vault))
}

func TestDistributeAllRejectsDuplicates(t *testing.T) {
	assert := assert.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	kt.airdropVault(1000)

	w := wallets(2)
	report, err := kt.keeper.DistributeAll([]types.HolderSnapshotEntry{
		{Wallet: w[0], Balance: 500},
		{Wallet: w[1], Balance: 500},
		{Wallet: w[0], Balance: 500},
	})
	assert.NotNil(err)
	assert.Equal(metrics.VStatusFailed, report.Status)
	assert.Equal(uint64(0), report.Calls)
	assert.Equal(uint64(0), kt.native(w[1]))
}

func TestDistributeAllSkips(t *testing.T) {
	assert := assert.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	w := wallets(1)

	report, err := kt.keeper.DistributeAll([]types.HolderSnapshotEntry{{Wallet: w[0], Balance: 500}})
	assert.Nil(err)
	assert.Equal(metrics.VStatusSkipped, report.Status)
	assert.Equal("no rewards", report.Message)

	kt.airdropVault(1000)
	report, err = kt.keeper.DistributeAll([]types.HolderSnapshotEntry{{Wallet: w[0], Balance: 50}})
	assert.Nil(err)
	assert.Equal(metrics.VStatusSkipped, report.Status)
	assert.Equal("no eligible holders", report.Message)
	assert.Equal(uint64(0), report.Calls)
}

func TestPushFeeSchedule(t *testing.T) {
	assert := assert.New(t)

	kt := newKeeperTest(t, DefaultConfig())

	report, err := kt.keeper.PushFeeSchedule()
	assert.Nil(err)
	assert.Equal("not launched", report.Message)

	kt.exec(&types.SetLaunchTimeTx{Signer: keeperKey, Mint: mint})

	report, err = kt.keeper.PushFeeSchedule()
	assert.Nil(err)
	assert.Equal(metrics.VStatusOK, report.Status)
	assert.Equal(types.LaunchFeeBps, kt.ledger.GetVault(mint).CurrentFeeBps)

	report, err = kt.keeper.PushFeeSchedule()
	assert.Nil(err)
	assert.Equal(metrics.VStatusSkipped, report.Status)

	kt.clock.Advance(400 * time.Second)
	_, err = kt.keeper.PushFeeSchedule()
	assert.Nil(err)
	assert.Equal(types.IntermediateFeeBps, kt.ledger.GetVault(mint).CurrentFeeBps)

	kt.clock.Advance(250 * time.Second)
	_, err = kt.keeper.PushFeeSchedule()
	assert.Nil(err)
	vault := kt.ledger.GetVault(mint)
	assert.Equal(types.FinalFeeBps, vault.CurrentFeeBps)
	assert.True(vault.FeeFinalized)

	report, err = kt.keeper.PushFeeSchedule()
	assert.Nil(err)
	assert.Equal("fee finalized", report.Message)
}

func TestKeeperMetrics(t *testing.T) {
	assert := assert.New(t)

	kt := newKeeperTest(t, DefaultConfig())
	m := metrics.NewVaultMetrics(prometheus.NewRegistry())
	kt.keeper.SetMetrics(m)

	accounts := kt.fund(wallets(2), 10000)
	_, err := kt.keeper.HarvestAll(accounts)
	assert.Nil(err)
	assert.Equal(1.0, testutil.ToFloat64(m.KeeperRounds.WithLabelValues(TaskHarvest, metrics.VStatusSkipped)))
	assert.Equal(1000.0, testutil.ToFloat64(m.PendingWithheld.WithLabelValues(mint.String())))
}

type staticSource struct {
	snapshot *Snapshot
}

func (s *staticSource) Snapshot() (*Snapshot, error) {
	return s.snapshot, nil
}

func TestKeeperRun(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	config := Config{
		FeeUpdateInterval:    time.Second,
		HarvestInterval:      time.Minute,
		DistributionInterval: time.Hour,
	}
	kt := newKeeperTest(t, config)
	kt.setThreshold(1)
	holders := wallets(3)
	kt.fund(holders, 10000)

	snapshot := &Snapshot{}
	for _, wallet := range holders {
		snapshot.Holders = append(snapshot.Holders, types.HolderSnapshotEntry{Wallet: wallet, Balance: 9500})
	}
	kt.keeper.source = &staticSource{snapshot: snapshot}
	kt.exec(&types.SetLaunchTimeTx{Signer: keeperKey, Mint: mint})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	kt.keeper.Start(ctx)
	require.Nil(kt.clock.BlockUntilContext(ctx, 3))

	kt.clock.Advance(time.Second)
	assert.Eventually(func() bool {
		return kt.ledger.GetVault(mint).CurrentFeeBps == types.LaunchFeeBps
	}, 2*time.Second, 10*time.Millisecond)

	kt.clock.Advance(time.Minute)
	assert.Eventually(func() bool {
		return kt.ledger.GetVault(mint).TotalFeesHarvested == 3*500
	}, 2*time.Second, 10*time.Millisecond)

	kt.keeper.Stop()
	kt.keeper.Wait()
}
