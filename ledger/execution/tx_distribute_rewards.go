package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*DistributeRewardsTxExecutor)(nil)

// ------------------------------- DistributeRewards Transaction -----------------------------------

// DistributeRewardsTxExecutor implements the TxExecutor interface. It pays
// the reward pool to the eligible part of a holder snapshot, proportionally
// to balance.
type DistributeRewardsTxExecutor struct {
}

// NewDistributeRewardsTxExecutor creates a new instance of DistributeRewardsTxExecutor
func NewDistributeRewardsTxExecutor() *DistributeRewardsTxExecutor {
	return &DistributeRewardsTxExecutor{}
}

func (exec *DistributeRewardsTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.DistributeRewardsTx)

	if len(tx.Holders) > types.MaxDistributionBatch {
		return result.ErrInvalidBatchSize.WithMessage("batch of %v holders, allowed up to %v", len(tx.Holders), types.MaxDistributionBatch)
	}
	vault, res := loadVaultAs(view, tx, types.RoleKeeper)
	if res.IsError() {
		return res
	}
	if res := checkNotPaused(vault); res.IsError() {
		return res
	}

	seen := make(map[types.PublicKey]bool, len(tx.Holders))
	for _, holder := range tx.Holders {
		if holder.Wallet == types.ZeroAddress || holder.Balance == 0 {
			return result.ErrInvalidSnapshot.WithMessage("invalid entry %v", holder)
		}
		if seen[holder.Wallet] {
			return result.ErrInvalidSnapshot.WithMessage("duplicated holder %v", holder.Wallet)
		}
		seen[holder.Wallet] = true
	}
	if tx.SnapshotTotal != nil && *tx.SnapshotTotal == 0 {
		return result.ErrInvalidSnapshot.WithMessage("snapshot total is zero")
	}

	return result.OK
}

func (exec *DistributeRewardsTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.DistributeRewardsTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	if ctx.RewardSource != nil {
		token, err := ctx.RewardSource.CurrentRewardToken()
		if err != nil {
			return result.Error("failed to read the reward token: %v", err)
		}
		if token != types.ZeroAddress {
			vault.RewardTokenMint = token
		}
	}
	rewardMint := vault.RewardTokenMint

	registry := view.GetPoolRegistry(vault.VaultAddress)
	eligible := make([]types.HolderSnapshotEntry, 0, len(tx.Holders))
	eligibleTotal := uint64(0)
	for _, holder := range tx.Holders {
		if vault.IsRewardExcluded(holder.Wallet) || registry.Contains(holder.Wallet) {
			continue
		}
		if holder.EligibilityValue() < vault.MinHoldAmount {
			continue
		}
		total, res := checkedAdd(eligibleTotal, holder.Balance)
		if res.IsError() {
			return res
		}
		eligibleTotal = total
		eligible = append(eligible, holder)
	}
	if len(eligible) == 0 {
		return result.OKWith(result.MsgNoEligibleHolders)
	}

	total := eligibleTotal
	if tx.SnapshotTotal != nil {
		if *tx.SnapshotTotal < eligibleTotal {
			return result.ErrInvalidSnapshot.WithMessage("snapshot total %v below batch total %v", *tx.SnapshotTotal, eligibleTotal)
		}
		total = *tx.SnapshotTotal
	}

	available, res := rewardBalance(ctx, vault, rewardMint)
	if res.IsError() {
		return res
	}
	pool := available
	if tx.RewardPool != nil {
		pool = *tx.RewardPool
	}
	if pool == 0 {
		return result.OKWith(result.MsgNoRewards)
	}

	shares := make([]uint64, len(eligible))
	sum := uint64(0)
	for i, holder := range eligible {
		share, ok := types.ProportionalShare(holder.Balance, pool, total)
		if !ok {
			return result.ErrMathOverflow.WithMessage("share of %v", holder.Wallet)
		}
		shares[i] = share
		if sum, res = checkedAdd(sum, share); res.IsError() {
			return res
		}
	}
	if sum > available {
		return result.ErrInsufficientBalance.WithMessage("shares total %v, custody holds %v", sum, available)
	}

	paid := uint64(0)
	for i, holder := range eligible {
		if shares[i] == 0 {
			continue
		}
		destination, err := holder.RewardAccount(rewardMint)
		if err != nil {
			return result.Error("failed to derive reward account of %v: %v", holder.Wallet, err)
		}
		if res := payFromCustody(ctx, vault, rewardMint, destination, shares[i]); res.IsError() {
			return res.PrependLog(holder.Wallet.String())
		}
		paid++
	}
	if paid == 0 {
		return result.OKWith(result.MsgNoRewards)
	}

	distributed, res := checkedAdd(vault.TotalRewardsDistributed, sum)
	if res.IsError() {
		return res
	}
	vault.TotalRewardsDistributed = distributed
	vault.UniqueRewardRecipients = types.SaturatingAdd(vault.UniqueRewardRecipients, paid)
	vault.LastDistributionTime = types.Unix(ctx.Now)
	view.SetVault(tx.Mint, vault)

	return result.OKWith("distributed %v of %v to %v holders", sum, rewardMint, paid)
}
