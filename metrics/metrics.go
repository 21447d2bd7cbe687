// Package metrics contains the prometheus instrumentation of the vault and the keeper.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// VaultMetrics holds the counters of executed calls and keeper rounds.
type VaultMetrics struct {
	// Executed calls, partitioned by tx name and result code.
	TxTotal *prometheus.CounterVec

	// Token amounts moved by accepted calls, partitioned by mint.
	FeesHarvested      *prometheus.CounterVec
	RewardsDistributed *prometheus.CounterVec
	RewardRecipients   *prometheus.CounterVec

	// Keeper rounds, partitioned by task and status.
	KeeperRounds        *prometheus.CounterVec
	KeeperRoundDuration *prometheus.HistogramVec
	PendingWithheld     *prometheus.GaugeVec
	LastRoundTimestamp  *prometheus.GaugeVec
}

// NewVaultMetrics creates the vault metrics and registers them with reg.
func NewVaultMetrics(reg prometheus.Registerer) *VaultMetrics {
	m := &VaultMetrics{
		TxTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MTxTotal,
				Help: "How many vault calls were executed, partitioned by tx and result code.",
			},
			[]string{LTx, LCode},
		),
		FeesHarvested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MFeesHarvestedTotal,
				Help: "Fees harvested into custody, in base units of the taxed token.",
			},
			[]string{LMint},
		),
		RewardsDistributed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MRewardsDistributedTotal,
				Help: "Rewards paid to holders, in base units of the reward token.",
			},
			[]string{LMint},
		),
		RewardRecipients: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MRewardRecipientsTotal,
				Help: "Reward payments made to holders.",
			},
			[]string{LMint},
		),
		KeeperRounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MKeeperRoundsTotal,
				Help: "Keeper rounds, partitioned by task and status.",
			},
			[]string{LTask, LStatus},
		),
		KeeperRoundDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MKeeperRoundDuration,
				Help:    "How long keeper rounds take, partitioned by task.",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{LTask},
		),
		PendingWithheld: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MKeeperPendingWithheld,
				Help: "Withheld fees observed by the keeper before harvesting.",
			},
			[]string{LMint},
		),
		LastRoundTimestamp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MKeeperLastRoundTimestamp,
				Help: "Unix time of the last completed keeper round, partitioned by task.",
			},
			[]string{LTask},
		),
	}
	reg.MustRegister(
		m.TxTotal,
		m.FeesHarvested,
		m.RewardsDistributed,
		m.RewardRecipients,
		m.KeeperRounds,
		m.KeeperRoundDuration,
		m.PendingWithheld,
		m.LastRoundTimestamp,
	)
	return m
}

var (
	defaultOnce    sync.Once
	defaultMetrics *VaultMetrics
)

// Default returns the metrics registered with the default prometheus registry.
func Default() *VaultMetrics {
	defaultOnce.Do(func() {
		defaultMetrics = NewVaultMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// ObserveTx counts one executed call.
func (m *VaultMetrics) ObserveTx(tx, code string) {
	if m == nil {
		return
	}
	m.TxTotal.WithLabelValues(tx, code).Inc()
}

// ObserveStats adds the statistics deltas of an accepted call.
func (m *VaultMetrics) ObserveStats(mint, rewardMint string, harvested, distributed, recipients uint64) {
	if m == nil {
		return
	}
	if harvested > 0 {
		m.FeesHarvested.WithLabelValues(mint).Add(float64(harvested))
	}
	if distributed > 0 {
		m.RewardsDistributed.WithLabelValues(rewardMint).Add(float64(distributed))
	}
	if recipients > 0 {
		m.RewardRecipients.WithLabelValues(mint).Add(float64(recipients))
	}
}

// ObserveRound records a finished keeper round.
func (m *VaultMetrics) ObserveRound(task, status string, seconds float64, finishedAt int64) {
	if m == nil {
		return
	}
	m.KeeperRounds.WithLabelValues(task, status).Inc()
	m.KeeperRoundDuration.WithLabelValues(task).Observe(seconds)
	m.LastRoundTimestamp.WithLabelValues(task).Set(float64(finishedAt))
}

// ObservePending records the withheld fees the keeper saw before a harvest.
func (m *VaultMetrics) ObservePending(mint string, amount uint64) {
	if m == nil {
		return
	}
	m.PendingWithheld.WithLabelValues(mint).Set(float64(amount))
}
