package dial

import (
	"time"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger/types"
)

// FirstUpdateTime returns the first Monday 00:00 UTC on or after the launch
// day. A token launched on a Monday may update from that day on.
func FirstUpdateTime(launch time.Time) time.Time {
	launch = launch.UTC()
	day := time.Date(launch.Year(), launch.Month(), launch.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}

// NextUpdateTime returns the earliest time after now at which the reward
// token may change.
func NextUpdateTime(d *types.DialState, now time.Time) time.Time {
	now = now.UTC()
	earliest := FirstUpdateTime(time.Unix(int64(d.LaunchTimestamp), 0))
	if d.UpdateCount > 0 {
		cooldown := time.Unix(int64(d.LastUpdate), 0).UTC().Add(types.RewardTokenUpdateCooldown)
		if cooldown.After(earliest) {
			earliest = cooldown
		}
	}
	if now.After(earliest) {
		earliest = now
	}
	for earliest.Weekday() != time.Monday {
		next := earliest.AddDate(0, 0, 1)
		earliest = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
	}
	return earliest
}

// CheckUpdate validates that the reward token may change at now.
func CheckUpdate(d *types.DialState, now time.Time) result.Result {
	now = now.UTC()
	if d.LaunchTimestamp == 0 {
		return result.ErrLaunchTimeNotSet
	}
	first := FirstUpdateTime(time.Unix(int64(d.LaunchTimestamp), 0))
	if now.Before(first) {
		return result.ErrTooEarlyToUpdate.WithMessage("first update allowed at %v", first.Format(time.RFC3339))
	}
	if now.Weekday() != time.Monday {
		return result.ErrTooEarlyToUpdate.WithMessage("updates are only allowed on Mondays")
	}
	if d.UpdateCount > 0 {
		last := time.Unix(int64(d.LastUpdate), 0).UTC()
		if now.Sub(last) < types.RewardTokenUpdateCooldown {
			return result.ErrUpdateCooldown.WithMessage("last update at %v", last.Format(time.RFC3339))
		}
	}
	return result.OK
}

// Apply records a reward token change at now.
func Apply(d *types.DialState, token types.PublicKey, now time.Time) {
	d.Record(types.RewardTokenUpdate{
		Timestamp: types.Unix(now),
		OldToken:  d.CurrentRewardToken,
		NewToken:  token,
	})
	d.CurrentRewardToken = token
	d.LastUpdate = types.Unix(now)
	d.UpdateCount++
}
