package execution

import (
	"github.com/pkg/errors"

	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

// --------------------------------- Execution Utilities -------------------------------------

// getVault loads the vault record of mint
func getVault(view *st.StoreView, mint types.PublicKey) (*types.VaultState, result.Result) {
	if mint == types.ZeroAddress {
		return nil, result.ErrInvalidTokenMint
	}
	vault := view.GetVault(mint)
	if vault == nil {
		return nil, result.ErrNotInitialized.WithMessage("no vault for mint %v", mint)
	}
	return vault, result.OK
}

// requireRole checks that signer holds exactly role over the vault
func requireRole(vault *types.VaultState, signer types.PublicKey, role types.Role) result.Result {
	if got := vault.RoleOf(signer); got != role {
		return result.ErrUnauthorized.WithMessage("requires %v, signer %v is %v", role, signer, got)
	}
	return result.OK
}

// loadVaultAs loads the vault record of the tx mint and checks the signer role
func loadVaultAs(view *st.StoreView, tx types.Tx, role types.Role) (*types.VaultState, result.Result) {
	vault, res := getVault(view, tx.GetMint())
	if res.IsError() {
		return nil, res
	}
	if res := requireRole(vault, tx.GetSigner(), role); res.IsError() {
		return nil, res
	}
	return vault, result.OK
}

func checkNotPaused(vault *types.VaultState) result.Result {
	if vault.Paused {
		return result.ErrPaused
	}
	return result.OK
}

// checkBatchSize checks 1 <= n <= max
func checkBatchSize(n, max int) result.Result {
	if n < 1 || n > max {
		return result.ErrInvalidBatchSize.WithMessage("batch of %v, allowed 1 to %v", n, max)
	}
	return result.OK
}

func tokenLedgerError(op string, err error) result.Result {
	return result.ErrTokenLedger.WithMessage("%v: %v", op, err)
}

func checkedAdd(a, b uint64) (uint64, result.Result) {
	sum, ok := types.CheckedAdd(a, b)
	if !ok {
		return 0, result.ErrMathOverflow.WithMessage("%v + %v", a, b)
	}
	return sum, result.OK
}

// custodyBalance returns the balance the vault custodies of asset.
// NativeMint reads the native balance of the vault address.
func custodyBalance(ctx *CallContext, vault *types.VaultState, asset types.PublicKey) (uint64, result.Result) {
	if asset == types.NativeMint {
		balance, err := ctx.Tokens.NativeBalance(vault.VaultAddress)
		if err != nil {
			return 0, tokenLedgerError("native balance", err)
		}
		return balance, result.OK
	}
	custody, err := vault.CustodyAddress(asset)
	if err != nil {
		return 0, result.Error("failed to derive custody account: %v", err)
	}
	balance, err := ctx.Tokens.Balance(custody)
	if err != nil {
		return 0, tokenLedgerError("custody balance", err)
	}
	return balance, result.OK
}

// rewardBalance is custodyBalance with an unopened custody account read as
// an empty pool.
func rewardBalance(ctx *CallContext, vault *types.VaultState, asset types.PublicKey) (uint64, result.Result) {
	if asset == types.NativeMint {
		return custodyBalance(ctx, vault, asset)
	}
	custody, err := vault.CustodyAddress(asset)
	if err != nil {
		return 0, result.Error("failed to derive custody account: %v", err)
	}
	balance, err := ctx.Tokens.Balance(custody)
	if errors.Cause(err) == types.ErrTokenAccountNotFound {
		return 0, result.OK
	}
	if err != nil {
		return 0, tokenLedgerError("reward balance", err)
	}
	return balance, result.OK
}

// payFromCustody moves amount of asset from the vault custody to destination.
// Destination is a wallet for NativeMint, otherwise a token account of asset.
func payFromCustody(ctx *CallContext, vault *types.VaultState, asset, destination types.PublicKey, amount uint64) result.Result {
	if asset == types.NativeMint {
		if err := ctx.Tokens.TransferNative(vault.VaultAddress, destination, amount); err != nil {
			return tokenLedgerError("native transfer", err)
		}
		return result.OK
	}
	custody, err := vault.CustodyAddress(asset)
	if err != nil {
		return result.Error("failed to derive custody account: %v", err)
	}
	decimals, err := ctx.Tokens.Decimals(asset)
	if err != nil {
		return tokenLedgerError("decimals", err)
	}
	if err := ctx.Tokens.Transfer(asset, custody, destination, vault.VaultAddress, amount, decimals); err != nil {
		return tokenLedgerError("transfer", err)
	}
	return result.OK
}
