package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeSchedule(t *testing.T) {
	assert := assert.New(t)

	launch := time.Unix(1_750_000_000, 0)

	stage, bps := FeeSchedule(time.Time{}, launch)
	assert.Equal(FeeStageNotLaunched, stage)
	assert.Equal(uint16(0), bps)

	cases := []struct {
		elapsed time.Duration
		stage   FeeStage
		bps     uint16
	}{
		{-5 * time.Second, FeeStageLaunch, 3000},
		{0, FeeStageLaunch, 3000},
		{100 * time.Second, FeeStageLaunch, 3000},
		{299 * time.Second, FeeStageLaunch, 3000},
		{300 * time.Second, FeeStageIntermediate, 1500},
		{599 * time.Second, FeeStageIntermediate, 1500},
		{600 * time.Second, FeeStageFinalized, 500},
		{650 * time.Second, FeeStageFinalized, 500},
		{30 * 24 * time.Hour, FeeStageFinalized, 500},
	}
	for _, c := range cases {
		stage, bps := FeeSchedule(launch, launch.Add(c.elapsed))
		assert.Equal(c.stage, stage, "elapsed %v", c.elapsed)
		assert.Equal(c.bps, bps, "elapsed %v", c.elapsed)
	}

	v := TestVault()
	stage, _ = v.FeeScheduleAt(launch)
	assert.Equal(FeeStageNotLaunched, stage)
	v.LaunchTimestamp = Unix(launch)
	stage, bps = v.FeeScheduleAt(launch.Add(310 * time.Second))
	assert.Equal(FeeStageIntermediate, stage)
	assert.Equal(IntermediateFeeBps, bps)
}

func TestAntiSniperLimit(t *testing.T) {
	assert := assert.New(t)

	launch := time.Unix(1_750_000_000, 0)
	supply := uint64(1_000_000_000_000_000_000)

	_, active := AntiSniperLimit(time.Time{}, launch, supply)
	assert.False(active)

	max, active := AntiSniperLimit(launch, launch.Add(10*time.Second), supply)
	assert.True(active)
	assert.Equal(supply/100, max)

	_, active = AntiSniperLimit(launch, launch.Add(AntiSniperWindow), supply)
	assert.False(active)
}
