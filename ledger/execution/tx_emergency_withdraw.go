package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*EmergencyWithdrawTxExecutor)(nil)
var _ TxExecutor = (*EmergencyWithdrawWithheldTxExecutor)(nil)

// ------------------------------- EmergencyWithdraw Transaction -----------------------------------

// EmergencyWithdrawTxExecutor implements the TxExecutor interface. Withdrawals
// bypass the split and leave the harvest and distribution statistics alone.
type EmergencyWithdrawTxExecutor struct {
}

// NewEmergencyWithdrawTxExecutor creates a new instance of EmergencyWithdrawTxExecutor
func NewEmergencyWithdrawTxExecutor() *EmergencyWithdrawTxExecutor {
	return &EmergencyWithdrawTxExecutor{}
}

func (exec *EmergencyWithdrawTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.EmergencyWithdrawTx)

	if _, res := loadVaultAs(view, tx, types.RoleAuthority); res.IsError() {
		return res
	}
	if tx.Asset == types.ZeroAddress {
		return result.ErrInvalidTokenMint.WithMessage("withdraw asset is required")
	}
	if tx.Destination == types.ZeroAddress {
		return result.Error("withdraw destination is required")
	}
	if !tx.All && tx.Amount == 0 {
		return result.ErrInvalidWithdrawAmount
	}

	return result.OK
}

func (exec *EmergencyWithdrawTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.EmergencyWithdrawTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	balance, res := custodyBalance(ctx, vault, tx.Asset)
	if res.IsError() {
		return res
	}
	amount := tx.Amount
	if tx.All {
		amount = balance
	}
	if amount > balance {
		return result.ErrInsufficientBalance.WithMessage("custody holds %v, requested %v", balance, amount)
	}
	if amount == 0 {
		return result.OKWith("nothing to withdraw")
	}

	if res := payFromCustody(ctx, vault, tx.Asset, tx.Destination, amount); res.IsError() {
		return res
	}

	logger.Warnf("Emergency withdrawal of %v %v from vault %v to %v", amount, tx.Asset, vault.VaultAddress, tx.Destination)
	return result.OKWith("withdrew %v", amount)
}

// ------------------------------- EmergencyWithdrawWithheld Transaction -----------------------------------

// EmergencyWithdrawWithheldTxExecutor implements the TxExecutor interface
type EmergencyWithdrawWithheldTxExecutor struct {
}

// NewEmergencyWithdrawWithheldTxExecutor creates a new instance of EmergencyWithdrawWithheldTxExecutor
func NewEmergencyWithdrawWithheldTxExecutor() *EmergencyWithdrawWithheldTxExecutor {
	return &EmergencyWithdrawWithheldTxExecutor{}
}

func (exec *EmergencyWithdrawWithheldTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.EmergencyWithdrawWithheldTx)

	if res := checkBatchSize(len(tx.Accounts), types.MaxHarvestBatch); res.IsError() {
		return res
	}
	if _, res := loadVaultAs(view, tx, types.RoleAuthority); res.IsError() {
		return res
	}
	if tx.Destination == types.ZeroAddress {
		return result.Error("withdraw destination is required")
	}

	return result.OK
}

func (exec *EmergencyWithdrawWithheldTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.EmergencyWithdrawWithheldTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	amount, err := ctx.Tokens.WithdrawWithheldFromAccounts(tx.Mint, tx.Destination, vault.VaultAddress, tx.Accounts)
	if err != nil {
		return tokenLedgerError("withdraw withheld from accounts", err)
	}

	logger.Warnf("Emergency withdrawal of %v withheld %v from %v accounts to %v", amount, tx.Mint, len(tx.Accounts), tx.Destination)
	return result.OKWith("withdrew %v withheld", amount)
}
