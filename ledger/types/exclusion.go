package types

import (
	"fmt"

	"github.com/mikotoken/vault/common/result"
)

// ExclusionKind selects which vault mechanics an address is exempt from.
type ExclusionKind uint8

const (
	ExclusionFee    ExclusionKind = 1
	ExclusionReward ExclusionKind = 2
	ExclusionBoth   ExclusionKind = ExclusionFee | ExclusionReward
)

// IsValid reports whether k is one of the defined kinds
func (k ExclusionKind) IsValid() bool {
	return k == ExclusionFee || k == ExclusionReward || k == ExclusionBoth
}

// Covers reports whether k includes every mechanic of other
func (k ExclusionKind) Covers(other ExclusionKind) bool {
	return k&other == other
}

func (k ExclusionKind) String() string {
	switch k {
	case ExclusionFee:
		return "fee"
	case ExclusionReward:
		return "reward"
	case ExclusionBoth:
		return "both"
	default:
		return fmt.Sprintf("ExclusionKind(%d)", uint8(k))
	}
}

// ParseExclusionKind parses "fee", "reward" or "both".
func ParseExclusionKind(s string) (ExclusionKind, error) {
	switch s {
	case "fee":
		return ExclusionFee, nil
	case "reward":
		return ExclusionReward, nil
	case "both":
		return ExclusionBoth, nil
	}
	return 0, fmt.Errorf("unknown exclusion kind %q", s)
}

// ExclusionEntry is the per address exclusion record.
type ExclusionEntry struct {
	Wallet    PublicKey
	Kind      ExclusionKind
	CreatedAt uint64 // unix seconds
	CreatedBy PublicKey
}

func (e ExclusionEntry) String() string {
	return fmt.Sprintf("ExclusionEntry{%v %v %v %v}", e.Wallet, e.Kind, e.CreatedAt, e.CreatedBy)
}

// ExcludesFees reports whether the entry exempts the wallet from fee withholding
func (e ExclusionEntry) ExcludesFees() bool {
	return e.Kind.Covers(ExclusionFee)
}

// ExcludesRewards reports whether the entry exempts the wallet from distribution
func (e ExclusionEntry) ExcludesRewards() bool {
	return e.Kind.Covers(ExclusionReward)
}

// FindExclusion returns the index of the entry for wallet, or -1.
func (v *VaultState) FindExclusion(wallet PublicKey) int {
	for i, entry := range v.Exclusions {
		if entry.Wallet == wallet {
			return i
		}
	}
	return -1
}

// IsFeeExcluded reports whether wallet is exempt from fee withholding and harvesting
func (v *VaultState) IsFeeExcluded(wallet PublicKey) bool {
	idx := v.FindExclusion(wallet)
	return idx >= 0 && v.Exclusions[idx].ExcludesFees()
}

// IsRewardExcluded reports whether wallet is exempt from reward distribution
func (v *VaultState) IsRewardExcluded(wallet PublicKey) bool {
	idx := v.FindExclusion(wallet)
	return idx >= 0 && v.Exclusions[idx].ExcludesRewards()
}

// FeeExclusions lists the fee exempt wallets in insertion order
func (v *VaultState) FeeExclusions() []PublicKey {
	return v.exclusionsOf(ExclusionFee)
}

// RewardExclusions lists the reward exempt wallets in insertion order
func (v *VaultState) RewardExclusions() []PublicKey {
	return v.exclusionsOf(ExclusionReward)
}

func (v *VaultState) exclusionsOf(kind ExclusionKind) []PublicKey {
	wallets := []PublicKey{}
	for _, entry := range v.Exclusions {
		if entry.Kind.Covers(kind) {
			wallets = append(wallets, entry.Wallet)
		}
	}
	return wallets
}

// AddExclusion creates the entry for wallet or changes its kind. System
// addresses may only hold ExclusionBoth.
func (v *VaultState) AddExclusion(wallet PublicKey, kind ExclusionKind, now uint64, by PublicKey) result.Result {
	if !kind.IsValid() {
		return result.Error("Invalid exclusion kind: %v", kind)
	}
	if v.IsSystemAddress(wallet) && kind != ExclusionBoth {
		return result.ErrCannotRemoveSystemExclusion.WithMessage("%v is a system address and must stay excluded from both", wallet)
	}

	idx := v.FindExclusion(wallet)
	if idx >= 0 {
		if v.Exclusions[idx].Kind == kind {
			return result.ErrAlreadyExcluded.WithMessage("%v is already excluded from %v", wallet, kind)
		}
		v.Exclusions[idx].Kind = kind
		return result.OK
	}

	if len(v.Exclusions) >= MaxExclusions {
		return result.ErrExclusionListFull.WithMessage("exclusion list holds %v entries", MaxExclusions)
	}
	v.Exclusions = append(v.Exclusions, ExclusionEntry{
		Wallet:    wallet,
		Kind:      kind,
		CreatedAt: now,
		CreatedBy: by,
	})
	return result.OK
}

// RemoveExclusion drops kind from the entry for wallet, deleting the entry
// once it excludes nothing.
func (v *VaultState) RemoveExclusion(wallet PublicKey, kind ExclusionKind) result.Result {
	if !kind.IsValid() {
		return result.Error("Invalid exclusion kind: %v", kind)
	}
	idx := v.FindExclusion(wallet)
	if idx < 0 {
		return result.ErrNotExcluded.WithMessage("%v is not excluded", wallet)
	}
	if v.IsSystemAddress(wallet) {
		return result.ErrCannotRemoveSystemExclusion.WithMessage("%v is a system address", wallet)
	}

	entry := &v.Exclusions[idx]
	if !entry.Kind.Covers(kind) && kind != ExclusionBoth {
		return result.ErrNotExcluded.WithMessage("%v is not excluded from %v", wallet, kind)
	}
	remaining := entry.Kind &^ kind
	if remaining != 0 {
		entry.Kind = remaining
		return result.OK
	}
	v.Exclusions = append(v.Exclusions[:idx], v.Exclusions[idx+1:]...)
	return result.OK
}

// EnsureSystemExclusions excludes every system address from both mechanics,
// widening existing entries and taking a free slot for new ones.
func (v *VaultState) EnsureSystemExclusions(now uint64, by PublicKey) result.Result {
	for _, addr := range v.SystemAddresses() {
		if addr == ZeroAddress {
			continue
		}
		idx := v.FindExclusion(addr)
		if idx >= 0 {
			v.Exclusions[idx].Kind = ExclusionBoth
			continue
		}
		if len(v.Exclusions) >= MaxExclusions {
			return result.ErrExclusionListFull.WithMessage("no room to exclude system address %v", addr)
		}
		v.Exclusions = append(v.Exclusions, ExclusionEntry{
			Wallet:    addr,
			Kind:      ExclusionBoth,
			CreatedAt: now,
			CreatedBy: by,
		})
	}
	return result.OK
}
