package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestVaultMetrics(t *testing.T) {
	assert := assert.New(t)

	m := NewVaultMetrics(prometheus.NewRegistry())
	m.ObserveTx("harvest_fees", "OK")
	m.ObserveTx("harvest_fees", "OK")
	m.ObserveTx("harvest_fees", "Unauthorized")
	assert.Equal(2.0, testutil.ToFloat64(m.TxTotal.WithLabelValues("harvest_fees", "OK")))
	assert.Equal(1.0, testutil.ToFloat64(m.TxTotal.WithLabelValues("harvest_fees", "Unauthorized")))

	m.ObserveStats("mint", "reward", 617, 1000, 2)
	assert.Equal(617.0, testutil.ToFloat64(m.FeesHarvested.WithLabelValues("mint")))
	assert.Equal(1000.0, testutil.ToFloat64(m.RewardsDistributed.WithLabelValues("reward")))
	assert.Equal(2.0, testutil.ToFloat64(m.RewardRecipients.WithLabelValues("mint")))

	m.ObserveRound("harvest", VStatusOK, 0.5, 1700000000)
	assert.Equal(1.0, testutil.ToFloat64(m.KeeperRounds.WithLabelValues("harvest", VStatusOK)))
	assert.Equal(1700000000.0, testutil.ToFloat64(m.LastRoundTimestamp.WithLabelValues("harvest")))

	m.ObservePending("mint", 42)
	assert.Equal(42.0, testutil.ToFloat64(m.PendingWithheld.WithLabelValues("mint")))
}

func TestNilMetrics(t *testing.T) {
	var m *VaultMetrics
	assert.NotPanics(t, func() {
		m.ObserveTx("x", "OK")
		m.ObserveStats("a", "b", 1, 1, 1)
		m.ObserveRound("harvest", VStatusOK, 1, 1)
		m.ObservePending("a", 1)
	})
}

func TestDefaultRegistersOnce(t *testing.T) {
	assert.True(t, Default() == Default())
}
