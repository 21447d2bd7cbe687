package keeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/ledger"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/metrics"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "keeper"})

// Keeper drives the periodic calls of a vault as its keeper signer.
type Keeper struct {
	config  Config
	ledger  *ledger.Ledger
	signer  types.PublicKey
	mint    types.PublicKey
	source  HolderSource
	reports *ReportStore
	metrics *metrics.VaultMetrics

	mu     *sync.Mutex
	wg     *sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewKeeper creates a keeper of the vault of mint. source and reports may be
// nil, rounds then need explicit input and reports are not persisted.
func NewKeeper(l *ledger.Ledger, signer, mint types.PublicKey, source HolderSource, reports *ReportStore, config Config) *Keeper {
	return &Keeper{
		config:  config.normalize(),
		ledger:  l,
		signer:  signer,
		mint:    mint,
		source:  source,
		reports: reports,

		mu: &sync.Mutex{},
		wg: &sync.WaitGroup{},
	}
}

// SetMetrics sets the metrics keeper rounds are recorded in
func (k *Keeper) SetMetrics(m *metrics.VaultMetrics) {
	k.metrics = m
}

// Start runs the keeper rounds in the background until ctx is cancelled or
// Stop is called.
func (k *Keeper) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	k.ctx = c
	k.cancel = cancel

	k.wg.Add(1)
	go k.mainLoop()
}

// Stop notifies the keeper to stop without blocking.
func (k *Keeper) Stop() {
	if k.cancel != nil {
		k.cancel()
	}
}

// Wait blocks until the keeper goroutine has finished.
func (k *Keeper) Wait() {
	k.wg.Wait()
}

func (k *Keeper) mainLoop() {
	defer k.wg.Done()

	clock := k.ledger.Clock()
	fee := clock.NewTicker(k.config.FeeUpdateInterval)
	defer fee.Stop()
	harvest := clock.NewTicker(k.config.HarvestInterval)
	defer harvest.Stop()
	distribution := clock.NewTicker(k.config.DistributionInterval)
	defer distribution.Stop()

	logger.WithFields(log.Fields{
		"mint":         k.mint,
		"harvest":      k.config.HarvestInterval,
		"distribution": k.config.DistributionInterval,
		"fee":          k.config.FeeUpdateInterval,
	}).Info("Keeper started")

	for {
		select {
		case <-k.ctx.Done():
			logger.Info("Keeper stopped")
			return
		case <-fee.Chan():
			k.logRound(k.PushFeeSchedule())
		case <-harvest.Chan():
			k.logRound(k.harvestRound())
		case <-distribution.Chan():
			k.logRound(k.distributionRound())
		}
	}
}

func (k *Keeper) logRound(report *RoundReport, err error) {
	if err != nil {
		logger.Warnf("Keeper round failed: %v, %v", report, err)
		return
	}
	logger.Debugf("Keeper round done: %v", report)
}

func (k *Keeper) harvestRound() (*RoundReport, error) {
	if k.source == nil {
		return k.skip(TaskHarvest, "no holder source")
	}
	snapshot, err := k.source.Snapshot()
	if err != nil {
		return k.fail(TaskHarvest, err)
	}
	return k.HarvestAll(snapshot.HarvestAccounts(k.mint))
}

func (k *Keeper) distributionRound() (*RoundReport, error) {
	if k.source == nil {
		return k.skip(TaskDistribution, "no holder source")
	}
	snapshot, err := k.source.Snapshot()
	if err != nil {
		return k.fail(TaskDistribution, err)
	}
	return k.DistributeAll(snapshot.Holders)
}

// HarvestAll harvests the withheld fees of accounts in batches. The round is
// skipped while the pending withheld amount is below the harvest threshold,
// and stops at the first rejected batch.
func (k *Keeper) HarvestAll(accounts []types.PublicKey) (*RoundReport, error) {
	report := k.newReport(TaskHarvest)

	vault := k.ledger.GetVault(k.mint)
	if vault == nil {
		return k.finish(report, errors.Errorf("no vault for mint %v", k.mint))
	}

	candidates, pending, err := k.pendingWithheld(accounts)
	if err != nil {
		return k.finish(report, err)
	}
	k.metrics.ObservePending(k.mint.String(), pending)

	if pending == 0 || pending < vault.HarvestThreshold {
		report.Status = metrics.VStatusSkipped
		report.Message = fmt.Sprintf("pending %v below threshold %v", pending, vault.HarvestThreshold)
		return k.finish(report, nil)
	}
	if len(candidates) == 0 {
		report.Status = metrics.VStatusSkipped
		report.Message = "no token account to harvest through"
		return k.finish(report, nil)
	}

	batch := k.config.HarvestBatchSize
	for start := 0; start < len(candidates); start += batch {
		end := min(start+batch, len(candidates))
		res := k.ledger.Execute(&types.HarvestFeesTx{
			Signer:   k.signer,
			Mint:     k.mint,
			Accounts: candidates[start:end],
		})
		report.Calls++
		if res.IsError() {
			report.NextIndex = uint64(start)
			report.Amount = k.harvestedSince(vault)
			return k.finish(report, res)
		}
		report.NextIndex = uint64(end)
	}
	report.Amount = k.harvestedSince(vault)
	return k.finish(report, nil)
}

// pendingWithheld returns the accounts of accounts that hold withheld fees of
// the vault's mint and the total pending, mint pool included. Accounts that
// do not exist or belong to another mint are dropped. When only the mint pool
// holds fees, the first valid account is kept so a call can carry the round.
func (k *Keeper) pendingWithheld(accounts []types.PublicKey) ([]types.PublicKey, uint64, error) {
	var (
		candidates []types.PublicKey
		first      types.PublicKey
		pending    uint64
		err        error
	)
	seen := make(map[types.PublicKey]bool, len(accounts))
	k.ledger.Query(func(view *st.StoreView, tokens *token.Ledger) {
		pending, err = tokens.WithheldAmount(k.mint)
		if err != nil {
			return
		}
		for _, addr := range accounts {
			if seen[addr] {
				continue
			}
			seen[addr] = true

			account := tokens.GetAccount(addr)
			if account == nil || account.Mint != k.mint {
				continue
			}
			if first == types.ZeroAddress {
				first = addr
			}
			if account.Withheld == 0 {
				continue
			}
			pending = types.SaturatingAdd(pending, account.Withheld)
			candidates = append(candidates, addr)
		}
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read withheld fees")
	}
	if len(candidates) == 0 && first != types.ZeroAddress {
		candidates = append(candidates, first)
	}
	return candidates, pending, nil
}

func (k *Keeper) harvestedSince(before *types.VaultState) uint64 {
	after := k.ledger.GetVault(k.mint)
	if after == nil {
		return 0
	}
	return after.TotalFeesHarvested - before.TotalFeesHarvested
}

// DistributeAll pays the reward pool to holders in batches. The eligible
// total and the pool are fixed at the start of the round so every batch pays
// the same proportion. Zero balance entries are dropped and a wallet listed
// twice fails the round before any call.
func (k *Keeper) DistributeAll(holders []types.HolderSnapshotEntry) (*RoundReport, error) {
	report := k.newReport(TaskDistribution)

	vault := k.ledger.GetVault(k.mint)
	if vault == nil {
		return k.finish(report, errors.Errorf("no vault for mint %v", k.mint))
	}
	registry := k.ledger.GetPoolRegistry(k.mint)

	entries := make([]types.HolderSnapshotEntry, 0, len(holders))
	seen := make(map[types.PublicKey]bool, len(holders))
	total := uint64(0)
	for _, h := range holders {
		if h.Wallet == types.ZeroAddress || h.Balance == 0 {
			continue
		}
		if seen[h.Wallet] {
			return k.finish(report, errors.Errorf("holder %v listed twice", h.Wallet))
		}
		seen[h.Wallet] = true
		entries = append(entries, h)

		if vault.IsRewardExcluded(h.Wallet) || registry.Contains(h.Wallet) || h.EligibilityValue() < vault.MinHoldAmount {
			continue
		}
		sum, ok := types.CheckedAdd(total, h.Balance)
		if !ok {
			return k.finish(report, errors.New("snapshot total overflows"))
		}
		total = sum
	}
	if total == 0 {
		report.Status = metrics.VStatusSkipped
		report.Message = "no eligible holders"
		return k.finish(report, nil)
	}

	pool, err := k.rewardPool(vault)
	if err != nil {
		return k.finish(report, err)
	}
	if pool == 0 {
		report.Status = metrics.VStatusSkipped
		report.Message = "no rewards"
		return k.finish(report, nil)
	}

	batch := k.config.DistributionBatchSize
	for start := 0; start < len(entries); start += batch {
		end := min(start+batch, len(entries))
		res := k.ledger.Execute(&types.DistributeRewardsTx{
			Signer:        k.signer,
			Mint:          k.mint,
			Holders:       entries[start:end],
			SnapshotTotal: &total,
			RewardPool:    &pool,
		})
		report.Calls++
		if res.IsError() {
			report.NextIndex = uint64(start)
			k.distributedSince(vault, report)
			return k.finish(report, res)
		}
		report.NextIndex = uint64(end)
	}
	k.distributedSince(vault, report)
	return k.finish(report, nil)
}

// rewardPool returns the custody balance of the reward token in effect.
func (k *Keeper) rewardPool(vault *types.VaultState) (uint64, error) {
	rewardMint := vault.RewardTokenMint
	if dial := k.ledger.GetDialState(k.mint); dial != nil && dial.CurrentRewardToken != types.ZeroAddress {
		rewardMint = dial.CurrentRewardToken
	}

	var (
		pool uint64
		err  error
	)
	k.ledger.Query(func(view *st.StoreView, tokens *token.Ledger) {
		if rewardMint == types.NativeMint {
			pool, err = tokens.NativeBalance(vault.VaultAddress)
			return
		}
		custody, derr := vault.CustodyAddress(rewardMint)
		if derr != nil {
			err = derr
			return
		}
		if tokens.GetAccount(custody) == nil {
			return
		}
		pool, err = tokens.Balance(custody)
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read the %v reward pool", rewardMint)
	}
	return pool, nil
}

func (k *Keeper) distributedSince(before *types.VaultState, report *RoundReport) {
	after := k.ledger.GetVault(k.mint)
	if after == nil {
		return
	}
	report.Amount = after.TotalRewardsDistributed - before.TotalRewardsDistributed
	report.Recipients = after.UniqueRewardRecipients - before.UniqueRewardRecipients
}

// PushFeeSchedule applies the transfer fee the schedule requires now. It is
// skipped before launch, after finalization and when the fee is current.
func (k *Keeper) PushFeeSchedule() (*RoundReport, error) {
	report := k.newReport(TaskFeeSchedule)

	vault := k.ledger.GetVault(k.mint)
	if vault == nil {
		return k.finish(report, errors.Errorf("no vault for mint %v", k.mint))
	}
	if !vault.IsLaunched() {
		report.Status = metrics.VStatusSkipped
		report.Message = "not launched"
		return k.finish(report, nil)
	}
	if vault.FeeFinalized {
		report.Status = metrics.VStatusSkipped
		report.Message = "fee finalized"
		return k.finish(report, nil)
	}
	stage, bps := vault.FeeScheduleAt(k.ledger.Clock().Now())
	if bps == vault.CurrentFeeBps {
		report.Status = metrics.VStatusSkipped
		report.Message = fmt.Sprintf("%v already applied", stage)
		return k.finish(report, nil)
	}

	res := k.ledger.Execute(&types.UpdateTransferFeeTx{
		Signer:    k.signer,
		Mint:      k.mint,
		NewFeeBps: bps,
	})
	report.Calls++
	if res.IsError() {
		return k.finish(report, res)
	}
	report.Amount = uint64(bps)
	report.Message = stage.String()
	return k.finish(report, nil)
}

// LastReport returns the last persisted report of task.
func (k *Keeper) LastReport(task string) (*RoundReport, error) {
	if k.reports == nil {
		return nil, nil
	}
	return k.reports.Last(task)
}

func (k *Keeper) newReport(task string) *RoundReport {
	return &RoundReport{
		Task:      task,
		StartedAt: types.Unix(k.ledger.Clock().Now()),
	}
}

func (k *Keeper) skip(task, message string) (*RoundReport, error) {
	report := k.newReport(task)
	report.Status = metrics.VStatusSkipped
	report.Message = message
	return k.finish(report, nil)
}

func (k *Keeper) fail(task string, err error) (*RoundReport, error) {
	return k.finish(k.newReport(task), err)
}

func (k *Keeper) finish(report *RoundReport, err error) (*RoundReport, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.ledger.Clock().Now()
	report.FinishedAt = types.Unix(now)
	if err != nil {
		report.Status = metrics.VStatusFailed
		report.Message = err.Error()
	} else if report.Status == "" {
		report.Status = metrics.VStatusOK
	}

	elapsed := time.Duration(0)
	if report.FinishedAt > report.StartedAt {
		elapsed = time.Duration(report.FinishedAt-report.StartedAt) * time.Second
	}
	k.metrics.ObserveRound(report.Task, report.Status, elapsed.Seconds(), now.Unix())
	if k.reports != nil {
		if serr := k.reports.Save(report); serr != nil {
			logger.Warnf("Failed to persist round report: %v", serr)
		}
	}
	return report, err
}
