package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*HarvestFeesTxExecutor)(nil)

// ------------------------------- HarvestFees Transaction -----------------------------------

// HarvestFeesTxExecutor implements the TxExecutor interface. It collects the
// withheld fees of a batch of accounts into custody and splits them between
// the owner and the treasury.
type HarvestFeesTxExecutor struct {
}

// NewHarvestFeesTxExecutor creates a new instance of HarvestFeesTxExecutor
func NewHarvestFeesTxExecutor() *HarvestFeesTxExecutor {
	return &HarvestFeesTxExecutor{}
}

func (exec *HarvestFeesTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.HarvestFeesTx)

	if res := checkBatchSize(len(tx.Accounts), types.MaxHarvestBatch); res.IsError() {
		return res
	}
	vault, res := loadVaultAs(view, tx, types.RoleKeeper)
	if res.IsError() {
		return res
	}
	if res := checkNotPaused(vault); res.IsError() {
		return res
	}

	return result.OK
}

func (exec *HarvestFeesTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.HarvestFeesTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	accounts := make([]types.PublicKey, 0, len(tx.Accounts))
	for _, account := range tx.Accounts {
		if vault.IsFeeExcluded(account) {
			continue
		}
		accounts = append(accounts, account)
	}
	if len(accounts) > 0 {
		if _, err := ctx.Tokens.HarvestWithheld(tx.Mint, accounts); err != nil {
			return tokenLedgerError("harvest withheld", err)
		}
	}

	custody, err := vault.CustodyAddress(tx.Mint)
	if err != nil {
		return result.Error("failed to derive custody account: %v", err)
	}
	before, err := ctx.Tokens.Balance(custody)
	if err != nil {
		return tokenLedgerError("custody balance", err)
	}
	if _, err := ctx.Tokens.WithdrawWithheldFromMint(tx.Mint, custody, vault.VaultAddress); err != nil {
		return tokenLedgerError("withdraw withheld from mint", err)
	}
	after, err := ctx.Tokens.Balance(custody)
	if err != nil {
		return tokenLedgerError("custody balance", err)
	}
	if after < before {
		return result.Error("custody balance decreased during harvest: %v -> %v", before, after)
	}

	harvested := after - before
	if harvested == 0 {
		return result.OKWith(result.MsgNothingHarvested)
	}

	ownerAmount, treasuryAmount := types.SplitHarvest(harvested)
	if res := exec.pay(ctx, vault, custody, vault.OwnerWallet, ownerAmount); res.IsError() {
		return res.PrependLog("owner share")
	}
	if res := exec.pay(ctx, vault, custody, vault.Treasury, treasuryAmount); res.IsError() {
		return res.PrependLog("treasury share")
	}

	total, res := checkedAdd(vault.TotalFeesHarvested, harvested)
	if res.IsError() {
		return res
	}
	vault.TotalFeesHarvested = total
	vault.LastHarvestTime = types.Unix(ctx.Now)
	view.SetVault(tx.Mint, vault)

	return result.OKWith("harvested %v, owner %v, treasury %v", harvested, ownerAmount, treasuryAmount)
}

func (exec *HarvestFeesTxExecutor) pay(ctx *CallContext, vault *types.VaultState, custody, wallet types.PublicKey, amount uint64) result.Result {
	if amount == 0 {
		return result.OK
	}
	destination, err := types.AssociatedTokenAddress(wallet, vault.TokenMint)
	if err != nil {
		return result.Error("failed to derive token account of %v: %v", wallet, err)
	}
	if err := ctx.Tokens.Transfer(vault.TokenMint, custody, destination, vault.VaultAddress, amount, vault.TokenDecimals); err != nil {
		return tokenLedgerError("transfer", err)
	}
	return result.OK
}
