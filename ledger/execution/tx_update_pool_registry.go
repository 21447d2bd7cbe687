package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*UpdatePoolRegistryTxExecutor)(nil)

// ------------------------------- UpdatePoolRegistry Transaction -----------------------------------

// UpdatePoolRegistryTxExecutor implements the TxExecutor interface. Registered
// pools never receive rewards.
type UpdatePoolRegistryTxExecutor struct {
}

// NewUpdatePoolRegistryTxExecutor creates a new instance of UpdatePoolRegistryTxExecutor
func NewUpdatePoolRegistryTxExecutor() *UpdatePoolRegistryTxExecutor {
	return &UpdatePoolRegistryTxExecutor{}
}

func (exec *UpdatePoolRegistryTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdatePoolRegistryTx)

	if _, res := loadVaultAs(view, tx, types.RoleKeeper); res.IsError() {
		return res
	}
	if len(tx.Pools) == 0 {
		return result.ErrInvalidBatchSize.WithMessage("no pools given")
	}

	return result.OK
}

func (exec *UpdatePoolRegistryTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdatePoolRegistryTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	registry := view.GetPoolRegistry(vault.VaultAddress)
	if registry == nil {
		registry = &types.PoolRegistry{Vault: vault.VaultAddress}
	}
	added := registry.Add(tx.Pools)
	view.SetPoolRegistry(vault.VaultAddress, registry)

	return result.OKWith("added %v pools, %v registered", added, len(registry.Pools))
}
