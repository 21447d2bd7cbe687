package keeper

import (
	"time"

	"github.com/spf13/viper"

	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/ledger/types"
)

// Config sets the cadence and batch sizes of keeper rounds.
type Config struct {
	HarvestInterval       time.Duration
	DistributionInterval  time.Duration
	FeeUpdateInterval     time.Duration
	HarvestBatchSize      int
	DistributionBatchSize int
}

// DefaultConfig returns the default keeper configuration.
func DefaultConfig() Config {
	return Config{
		HarvestInterval:       15 * time.Minute,
		DistributionInterval:  time.Hour,
		FeeUpdateInterval:     30 * time.Second,
		HarvestBatchSize:      types.MaxHarvestBatch,
		DistributionBatchSize: types.MaxDistributionBatch,
	}
}

// ConfigFromViper reads the keeper configuration from viper.
func ConfigFromViper() Config {
	return Config{
		HarvestInterval:       viper.GetDuration(common.CfgKeeperHarvestInterval),
		DistributionInterval:  viper.GetDuration(common.CfgKeeperDistributionInterval),
		FeeUpdateInterval:     viper.GetDuration(common.CfgKeeperFeeUpdateInterval),
		HarvestBatchSize:      viper.GetInt(common.CfgKeeperHarvestBatchSize),
		DistributionBatchSize: viper.GetInt(common.CfgKeeperDistributionBatchSize),
	}
}

// normalize replaces unset intervals with defaults and clamps batch sizes to
// what a single call accepts.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.HarvestInterval <= 0 {
		c.HarvestInterval = def.HarvestInterval
	}
	if c.DistributionInterval <= 0 {
		c.DistributionInterval = def.DistributionInterval
	}
	if c.FeeUpdateInterval <= 0 {
		c.FeeUpdateInterval = def.FeeUpdateInterval
	}
	c.HarvestBatchSize = clamp(c.HarvestBatchSize, types.MaxHarvestBatch)
	c.DistributionBatchSize = clamp(c.DistributionBatchSize, types.MaxDistributionBatch)
	return c
}

func clamp(n, max int) int {
	if n <= 0 || n > max {
		return max
	}
	return n
}
