package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*SetLaunchTimeTxExecutor)(nil)

// ------------------------------- SetLaunchTime Transaction -----------------------------------

// SetLaunchTimeTxExecutor implements the TxExecutor interface. Anyone may
// record the launch time, once.
type SetLaunchTimeTxExecutor struct {
}

// NewSetLaunchTimeTxExecutor creates a new instance of SetLaunchTimeTxExecutor
func NewSetLaunchTimeTxExecutor() *SetLaunchTimeTxExecutor {
	return &SetLaunchTimeTxExecutor{}
}

func (exec *SetLaunchTimeTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.SetLaunchTimeTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}
	if res := checkNotPaused(vault); res.IsError() {
		return res
	}
	if vault.IsLaunched() {
		return result.ErrLaunchTimeAlreadySet
	}
	if types.Unix(ctx.Now) == 0 {
		return result.Error("clock is not set")
	}

	return result.OK
}

func (exec *SetLaunchTimeTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.SetLaunchTimeTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}
	vault.LaunchTimestamp = types.Unix(ctx.Now)
	view.SetVault(tx.Mint, vault)

	return result.OKWith("launched at %v", vault.LaunchTimestamp)
}
