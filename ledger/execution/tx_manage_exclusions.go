package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*ManageExclusionsTxExecutor)(nil)

// ------------------------------- ManageExclusions Transaction -----------------------------------

// ManageExclusionsTxExecutor implements the TxExecutor interface
type ManageExclusionsTxExecutor struct {
}

// NewManageExclusionsTxExecutor creates a new instance of ManageExclusionsTxExecutor
func NewManageExclusionsTxExecutor() *ManageExclusionsTxExecutor {
	return &ManageExclusionsTxExecutor{}
}

func (exec *ManageExclusionsTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.ManageExclusionsTx)

	if _, res := loadVaultAs(view, tx, types.RoleAuthority); res.IsError() {
		return res
	}
	if tx.Wallet == types.ZeroAddress {
		return result.Error("exclusion wallet is required")
	}
	if !tx.Kind.IsValid() {
		return result.Error("invalid exclusion kind %v", tx.Kind)
	}
	if tx.Action != types.ExclusionAdd && tx.Action != types.ExclusionRemove {
		return result.Error("invalid exclusion action %v", uint8(tx.Action))
	}

	return result.OK
}

func (exec *ManageExclusionsTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.ManageExclusionsTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	switch tx.Action {
	case types.ExclusionAdd:
		res = vault.AddExclusion(tx.Wallet, tx.Kind, types.Unix(ctx.Now), tx.Signer)
	case types.ExclusionRemove:
		res = vault.RemoveExclusion(tx.Wallet, tx.Kind)
	}
	if res.IsError() {
		return res
	}
	view.SetVault(tx.Mint, vault)

	return result.OKWith("%v %v exclusion of %v", tx.Action, tx.Kind, tx.Wallet)
}
