package types

import "time"

const (
	// MaxHarvestBatch is the maximum number of token accounts per harvest or
	// withheld withdrawal call
	MaxHarvestBatch int = 20

	// MaxDistributionBatch is the maximum number of holder snapshot entries per
	// distribution call
	MaxDistributionBatch int = 15

	// MaxExclusions is the capacity of the exclusion list
	MaxExclusions int = 100

	// MaxPools is the capacity of the liquidity pool registry
	MaxPools int = 50
)

const (
	// BasisPointsDenominator represents 100%
	BasisPointsDenominator uint64 = 10000

	// OwnerShareBps is the owner's part of the collected tax, 1% out of 5%
	OwnerShareBps uint64 = 100

	// TreasuryShareBps is the treasury's part of the collected tax, 4% out of 5%
	TreasuryShareBps uint64 = 400

	// DefaultHarvestThreshold is the pending withheld amount that triggers a
	// keeper harvest, 500k tokens at 9 decimals
	DefaultHarvestThreshold uint64 = 500_000_000_000_000

	// DefaultTokenDecimals is the decimals of the taxed token
	DefaultTokenDecimals uint8 = 9
)

// Fee schedule
const (
	// FeeStageOneDuration is how long the launch fee applies
	FeeStageOneDuration = 300 * time.Second

	// FeeStageTwoDuration is the elapsed time after which the fee is final
	FeeStageTwoDuration = 600 * time.Second

	LaunchFeeBps       uint16 = 3000
	IntermediateFeeBps uint16 = 1500
	FinalFeeBps        uint16 = 500
)

// Anti-sniper limit
const (
	// AntiSniperWindow is the period after launch during which transfers are capped
	AntiSniperWindow = 600 * time.Second

	// AntiSniperMaxBps caps a single transfer at 1% of the supply
	AntiSniperMaxBps uint64 = 100
)

// Reward token scheduler
const (
	// MaxRewardTokenHistory keeps one year of weekly updates
	MaxRewardTokenHistory int = 52

	// RewardTokenUpdateCooldown is the minimum time between two reward token updates
	RewardTokenUpdateCooldown = 24 * time.Hour
)
