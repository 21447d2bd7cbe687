package types

import "time"

// FeeStage is a state of the decaying transfer fee.
type FeeStage uint8

const (
	FeeStageNotLaunched FeeStage = iota
	FeeStageLaunch
	FeeStageIntermediate
	FeeStageFinalized
)

func (s FeeStage) String() string {
	switch s {
	case FeeStageLaunch:
		return "decaying-30%"
	case FeeStageIntermediate:
		return "decaying-15%"
	case FeeStageFinalized:
		return "finalized-5%"
	default:
		return "not-launched"
	}
}

// FeeSchedule returns the stage and the fee the schedule requires at now for
// a token launched at launch. A zero launch means not launched. A clock
// behind the launch time is treated as zero elapsed.
func FeeSchedule(launch, now time.Time) (FeeStage, uint16) {
	if launch.IsZero() || launch.Unix() == 0 {
		return FeeStageNotLaunched, 0
	}
	elapsed := now.Sub(launch)
	switch {
	case elapsed < FeeStageOneDuration:
		return FeeStageLaunch, LaunchFeeBps
	case elapsed < FeeStageTwoDuration:
		return FeeStageIntermediate, IntermediateFeeBps
	default:
		return FeeStageFinalized, FinalFeeBps
	}
}

// FeeScheduleAt is FeeSchedule over a vault record.
func (v *VaultState) FeeScheduleAt(now time.Time) (FeeStage, uint16) {
	if !v.IsLaunched() {
		return FeeStageNotLaunched, 0
	}
	return FeeSchedule(v.LaunchTime(), now)
}
