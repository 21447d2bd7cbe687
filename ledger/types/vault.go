package types

import (
	"fmt"
	"time"
)

// VaultState is the custody and accounting record of one taxed token.
type VaultState struct {
	Authority       PublicKey
	KeeperAuthority PublicKey
	OwnerWallet     PublicKey
	Treasury        PublicKey
	TokenMint       PublicKey
	RewardTokenMint PublicKey
	ProgramID       PublicKey
	VaultAddress    PublicKey // custody PDA derived from ProgramID and TokenMint
	Bump            uint8
	TokenDecimals   uint8

	MinHoldAmount    uint64
	HarvestThreshold uint64

	LaunchTimestamp uint64 // unix seconds, zero until launch
	FeeFinalized    bool
	CurrentFeeBps   uint16
	Paused          bool

	TotalFeesHarvested      uint64
	TotalRewardsDistributed uint64
	LastHarvestTime         uint64
	LastDistributionTime    uint64
	UniqueRewardRecipients  uint64

	Exclusions []ExclusionEntry
}

func (v *VaultState) String() string {
	if v == nil {
		return "nil-VaultState"
	}
	return fmt.Sprintf("VaultState{mint: %v, authority: %v, keeper: %v, launch: %v, fee: %v, finalized: %v, harvested: %v, distributed: %v}",
		v.TokenMint, v.Authority, v.KeeperAuthority, v.LaunchTimestamp, v.CurrentFeeBps, v.FeeFinalized,
		v.TotalFeesHarvested, v.TotalRewardsDistributed)
}

// SystemAddresses returns the addresses that are permanently excluded.
func (v *VaultState) SystemAddresses() []PublicKey {
	return []PublicKey{
		v.Authority,
		v.Treasury,
		v.OwnerWallet,
		v.KeeperAuthority,
		v.VaultAddress,
		v.ProgramID,
	}
}

// IsSystemAddress reports whether addr is one of the protected system addresses
func (v *VaultState) IsSystemAddress(addr PublicKey) bool {
	if addr == ZeroAddress {
		return false
	}
	for _, sys := range v.SystemAddresses() {
		if sys == addr {
			return true
		}
	}
	return false
}

// RoleOf returns the role signer holds over the vault.
func (v *VaultState) RoleOf(signer PublicKey) Role {
	switch {
	case signer == ZeroAddress:
		return RoleNone
	case signer == v.Authority:
		return RoleAuthority
	case signer == v.KeeperAuthority:
		return RoleKeeper
	default:
		return RoleNone
	}
}

// IsLaunched reports whether the launch time has been recorded
func (v *VaultState) IsLaunched() bool {
	return v.LaunchTimestamp != 0
}

// LaunchTime returns the launch timestamp as a time.Time
func (v *VaultState) LaunchTime() time.Time {
	return time.Unix(int64(v.LaunchTimestamp), 0).UTC()
}

// CustodyAddress returns the vault's token account for mint.
func (v *VaultState) CustodyAddress(mint PublicKey) (PublicKey, error) {
	return AssociatedTokenAddress(v.VaultAddress, mint)
}

// Copy returns a deep copy of the vault record
func (v *VaultState) Copy() *VaultState {
	cp := *v
	cp.Exclusions = make([]ExclusionEntry, len(v.Exclusions))
	copy(cp.Exclusions, v.Exclusions)
	return &cp
}

// Unix converts t to the unix seconds stored in records.
func Unix(t time.Time) uint64 {
	if t.Unix() < 0 {
		return 0
	}
	return uint64(t.Unix())
}
