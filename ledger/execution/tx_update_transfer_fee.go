package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*UpdateTransferFeeTxExecutor)(nil)

// ------------------------------- UpdateTransferFee Transaction -----------------------------------

// UpdateTransferFeeTxExecutor implements the TxExecutor interface. The fee
// may only move to the rate the schedule requires at the call time.
type UpdateTransferFeeTxExecutor struct {
	maxFee uint64
}

// NewUpdateTransferFeeTxExecutor creates a new instance of UpdateTransferFeeTxExecutor
func NewUpdateTransferFeeTxExecutor(maxFee uint64) *UpdateTransferFeeTxExecutor {
	return &UpdateTransferFeeTxExecutor{
		maxFee: maxFee,
	}
}

func (exec *UpdateTransferFeeTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdateTransferFeeTx)

	vault, res := loadVaultAs(view, tx, types.RoleKeeper)
	if res.IsError() {
		return res
	}
	if res := checkNotPaused(vault); res.IsError() {
		return res
	}
	if !vault.IsLaunched() {
		return result.ErrLaunchTimeNotSet
	}
	if vault.FeeFinalized {
		return result.ErrFeesFinalized
	}

	_, required := vault.FeeScheduleAt(ctx.Now)
	if tx.NewFeeBps != required {
		return result.ErrInvalidFeePercentage.WithMessage("schedule requires %v bps, got %v", required, tx.NewFeeBps)
	}
	if tx.NewFeeBps == vault.CurrentFeeBps {
		return result.ErrFeeAlreadyApplied.WithMessage("fee already at %v bps", tx.NewFeeBps)
	}

	return result.OK
}

func (exec *UpdateTransferFeeTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdateTransferFeeTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	if err := ctx.Tokens.SetTransferFee(tx.Mint, vault.VaultAddress, tx.NewFeeBps, exec.maxFee); err != nil {
		return tokenLedgerError("set transfer fee", err)
	}

	stage, _ := vault.FeeScheduleAt(ctx.Now)
	vault.CurrentFeeBps = tx.NewFeeBps
	if stage == types.FeeStageFinalized {
		vault.FeeFinalized = true
	}
	view.SetVault(tx.Mint, vault)

	return result.OKWith("fee set to %v bps, stage %v", tx.NewFeeBps, stage)
}
