package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*UpdateConfigTxExecutor)(nil)

// ------------------------------- UpdateConfig Transaction -----------------------------------

// UpdateConfigTxExecutor implements the TxExecutor interface. Addresses that
// become system addresses are excluded from fees and rewards right away.
type UpdateConfigTxExecutor struct {
}

// NewUpdateConfigTxExecutor creates a new instance of UpdateConfigTxExecutor
func NewUpdateConfigTxExecutor() *UpdateConfigTxExecutor {
	return &UpdateConfigTxExecutor{}
}

func (exec *UpdateConfigTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdateConfigTx)

	vault, res := loadVaultAs(view, tx, types.RoleAuthority)
	if res.IsError() {
		return res
	}

	for _, addr := range []*types.PublicKey{tx.NewAuthority, tx.NewKeeperAuthority, tx.NewOwnerWallet, tx.NewTreasury, tx.NewRewardTokenMint} {
		if addr != nil && *addr == types.ZeroAddress {
			return result.Error("configured addresses cannot be the zero address")
		}
	}

	authority, keeper := vault.Authority, vault.KeeperAuthority
	if tx.NewAuthority != nil {
		authority = *tx.NewAuthority
	}
	if tx.NewKeeperAuthority != nil {
		keeper = *tx.NewKeeperAuthority
	}
	if authority == keeper {
		return result.ErrInvalidKeeperAuthority
	}

	return result.OK
}

func (exec *UpdateConfigTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdateConfigTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	if tx.NewAuthority != nil {
		vault.Authority = *tx.NewAuthority
	}
	if tx.NewKeeperAuthority != nil {
		vault.KeeperAuthority = *tx.NewKeeperAuthority
	}
	if tx.NewOwnerWallet != nil {
		vault.OwnerWallet = *tx.NewOwnerWallet
	}
	if tx.NewTreasury != nil {
		vault.Treasury = *tx.NewTreasury
	}
	if tx.NewRewardTokenMint != nil {
		vault.RewardTokenMint = *tx.NewRewardTokenMint
	}
	if tx.NewMinHoldAmount != nil {
		vault.MinHoldAmount = *tx.NewMinHoldAmount
	}
	if tx.NewHarvestThreshold != nil {
		vault.HarvestThreshold = *tx.NewHarvestThreshold
	}
	if tx.Paused != nil {
		vault.Paused = *tx.Paused
	}

	if res := vault.EnsureSystemExclusions(types.Unix(ctx.Now), tx.Signer); res.IsError() {
		return res
	}
	view.SetVault(tx.Mint, vault)

	return result.OKWith("configuration updated")
}
