package types

import "fmt"

// HolderSnapshotEntry is one holder of an externally computed snapshot. It
// only lives for the duration of a distribution call.
type HolderSnapshotEntry struct {
	Wallet       PublicKey
	TokenAccount PublicKey // reward token account, derived from Wallet when zero
	Balance      uint64
	USDValue     *uint64 // optional, compared against the minimum hold when set
}

func (h HolderSnapshotEntry) String() string {
	usd := "nil"
	if h.USDValue != nil {
		usd = fmt.Sprintf("%v", *h.USDValue)
	}
	return fmt.Sprintf("Holder{%v %v usd:%v}", h.Wallet, h.Balance, usd)
}

// EligibilityValue is the value compared against the minimum hold amount.
func (h HolderSnapshotEntry) EligibilityValue() uint64 {
	if h.USDValue != nil {
		return *h.USDValue
	}
	return h.Balance
}

// RewardAccount returns the account the holder's share is paid to.
func (h HolderSnapshotEntry) RewardAccount(rewardMint PublicKey) (PublicKey, error) {
	if h.TokenAccount != ZeroAddress {
		return h.TokenAccount, nil
	}
	if rewardMint == NativeMint {
		return h.Wallet, nil
	}
	return AssociatedTokenAddress(h.Wallet, rewardMint)
}
