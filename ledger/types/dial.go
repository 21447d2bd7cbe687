package types

import "fmt"

// RewardTokenUpdate records one change of the reward token.
type RewardTokenUpdate struct {
	Timestamp uint64
	OldToken  PublicKey
	NewToken  PublicKey
}

// DialState is the record of the reward token scheduler for one taxed token.
type DialState struct {
	Authority          PublicKey
	Treasury           PublicKey
	TokenMint          PublicKey
	LaunchTimestamp    uint64
	CurrentRewardToken PublicKey
	LastUpdate         uint64
	UpdateCount        uint64
	History            []RewardTokenUpdate
}

func (d *DialState) String() string {
	if d == nil {
		return "nil-DialState"
	}
	return fmt.Sprintf("DialState{mint: %v, token: %v, updates: %v, last: %v}",
		d.TokenMint, d.CurrentRewardToken, d.UpdateCount, d.LastUpdate)
}

// Record appends an update, dropping the oldest once MaxRewardTokenHistory is reached.
func (d *DialState) Record(update RewardTokenUpdate) {
	if len(d.History) >= MaxRewardTokenHistory {
		d.History = append(d.History[:0], d.History[len(d.History)-MaxRewardTokenHistory+1:]...)
	}
	d.History = append(d.History, update)
}
