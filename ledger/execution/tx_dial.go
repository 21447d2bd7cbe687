package execution

import (
	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger/dial"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ TxExecutor = (*InitializeDialTxExecutor)(nil)
var _ TxExecutor = (*UpdateRewardTokenTxExecutor)(nil)

// ------------------------------- InitializeDial Transaction -----------------------------------

// InitializeDialTxExecutor implements the TxExecutor interface. The scheduler
// starts with the native token as reward token.
type InitializeDialTxExecutor struct {
}

// NewInitializeDialTxExecutor creates a new instance of InitializeDialTxExecutor
func NewInitializeDialTxExecutor() *InitializeDialTxExecutor {
	return &InitializeDialTxExecutor{}
}

func (exec *InitializeDialTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.InitializeDialTx)

	if _, res := loadVaultAs(view, tx, types.RoleAuthority); res.IsError() {
		return res
	}
	if view.GetDialState(tx.Mint) != nil {
		return result.ErrAlreadyInitialized.WithMessage("reward token scheduler already initialized for mint %v", tx.Mint)
	}

	return result.OK
}

func (exec *InitializeDialTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.InitializeDialTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}

	treasury := tx.Treasury
	if treasury == types.ZeroAddress {
		treasury = vault.Treasury
	}
	launch := tx.LaunchTimestamp
	if launch == 0 {
		launch = vault.LaunchTimestamp
	}

	view.SetDialState(tx.Mint, &types.DialState{
		Authority:          tx.Signer,
		Treasury:           treasury,
		TokenMint:          tx.Mint,
		LaunchTimestamp:    launch,
		CurrentRewardToken: types.NativeMint,
	})

	return result.OKWith("reward token scheduler initialized, launch %v", launch)
}

// ------------------------------- UpdateRewardToken Transaction -----------------------------------

// UpdateRewardTokenTxExecutor implements the TxExecutor interface
type UpdateRewardTokenTxExecutor struct {
}

// NewUpdateRewardTokenTxExecutor creates a new instance of UpdateRewardTokenTxExecutor
func NewUpdateRewardTokenTxExecutor() *UpdateRewardTokenTxExecutor {
	return &UpdateRewardTokenTxExecutor{}
}

func (exec *UpdateRewardTokenTxExecutor) sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdateRewardTokenTx)

	if _, res := getVault(view, tx.Mint); res.IsError() {
		return res
	}
	d := view.GetDialState(tx.Mint)
	if d == nil {
		return result.ErrNotInitialized.WithMessage("no reward token scheduler for mint %v", tx.Mint)
	}
	if tx.Signer == types.ZeroAddress || tx.Signer != d.Authority {
		return result.ErrUnauthorized.WithMessage("signer %v is not the scheduler authority", tx.Signer)
	}
	if tx.NewRewardToken == types.ZeroAddress {
		return result.ErrInvalidTokenMint.WithMessage("reward token is required")
	}

	return dial.CheckUpdate(d, ctx.Now)
}

func (exec *UpdateRewardTokenTxExecutor) process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.UpdateRewardTokenTx)

	vault, res := getVault(view, tx.Mint)
	if res.IsError() {
		return res
	}
	d := view.GetDialState(tx.Mint)
	if d == nil {
		return result.ErrNotInitialized
	}

	old := d.CurrentRewardToken
	dial.Apply(d, tx.NewRewardToken, ctx.Now)
	view.SetDialState(tx.Mint, d)

	vault.RewardTokenMint = tx.NewRewardToken
	view.SetVault(tx.Mint, vault)

	return result.OKWith("reward token %v -> %v, update %v", old, tx.NewRewardToken, d.UpdateCount)
}
