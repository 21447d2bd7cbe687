package execution

import (
	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*InitializeTxExecutor)(nil)

// ------------------------------- Initialize Transaction -----------------------------------

// InitializeTxExecutor implements the TxExecutor interface
type InitializeTxExecutor struct {
	programID types.PublicKey
}

// NewInitializeTxExecutor creates a new instance of InitializeTxExecutor
func NewInitializeTxExecutor(programID types.PublicKey) *InitializeTxExecutor {
	return &InitializeTxExecutor{
		programID: programID,
	}
}

func (exec *InitializeTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.InitializeTx)

	if tx.Mint == types.ZeroAddress {
		return result.ErrInvalidTokenMint
	}
	if tx.Authority == types.ZeroAddress || tx.KeeperAuthority == types.ZeroAddress || tx.OwnerWallet == types.ZeroAddress {
		return result.Error("authority, keeper authority and owner wallet are required")
	}
	if tx.Signer != tx.Authority {
		return result.ErrUnauthorized.WithMessage("initialize must be signed by the authority")
	}
	if tx.KeeperAuthority == tx.Authority {
		return result.ErrInvalidKeeperAuthority
	}
	if view.GetVault(tx.Mint) != nil {
		return result.ErrAlreadyInitialized.WithMessage("vault already initialized for mint %v", tx.Mint)
	}

	return result.OK
}

func (exec *InitializeTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.InitializeTx)

	decimals, err := ctx.Tokens.Decimals(tx.Mint)
	if err != nil {
		return result.ErrInvalidTokenMint.WithMessage("mint %v: %v", tx.Mint, err)
	}

	vaultAddress, bump, err := types.FindVaultAddress(exec.programID, tx.Mint)
	if err != nil {
		return result.Error("failed to derive vault address: %v", err)
	}

	treasury := tx.Treasury
	if treasury == types.ZeroAddress {
		treasury = tx.Authority
	}
	rewardToken := tx.RewardTokenMint
	if rewardToken == types.ZeroAddress {
		rewardToken = types.NativeMint
	}

	vault := &types.VaultState{
		Authority:        tx.Authority,
		KeeperAuthority:  tx.KeeperAuthority,
		OwnerWallet:      tx.OwnerWallet,
		Treasury:         treasury,
		TokenMint:        tx.Mint,
		RewardTokenMint:  rewardToken,
		ProgramID:        exec.programID,
		VaultAddress:     vaultAddress,
		Bump:             bump,
		TokenDecimals:    decimals,
		MinHoldAmount:    tx.MinHoldAmount,
		HarvestThreshold: types.DefaultHarvestThreshold,
	}
	if res := vault.EnsureSystemExclusions(types.Unix(ctx.Now), tx.Signer); res.IsError() {
		return res
	}

	view.SetVault(tx.Mint, vault)
	view.SetPoolRegistry(vaultAddress, &types.PoolRegistry{Vault: vaultAddress})

	return result.OKWith("vault %v created", vaultAddress)
}
