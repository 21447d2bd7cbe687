package execution

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/common/result"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "execution"})

// CallContext carries what a call observes besides the state view. Tokens
// must be bound to the same view the call runs on.
type CallContext struct {
	Now          time.Time
	Tokens       types.TokenLedger
	RewardSource types.RewardTokenSource // optional
}

// TxExecutor defines the interface of the transaction executors
type TxExecutor interface {
	sanityCheck(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result
	process(ctx *CallContext, view *st.StoreView, transaction types.Tx) result.Result
}

// Executor executes the transactions
type Executor struct {
	programID types.PublicKey

	initializeTxExec                *InitializeTxExecutor
	setLaunchTimeTxExec             *SetLaunchTimeTxExecutor
	updateTransferFeeTxExec         *UpdateTransferFeeTxExecutor
	harvestFeesTxExec               *HarvestFeesTxExecutor
	distributeRewardsTxExec         *DistributeRewardsTxExecutor
	manageExclusionsTxExec          *ManageExclusionsTxExecutor
	updateConfigTxExec              *UpdateConfigTxExecutor
	emergencyWithdrawTxExec         *EmergencyWithdrawTxExecutor
	emergencyWithdrawWithheldTxExec *EmergencyWithdrawWithheldTxExecutor
	updatePoolRegistryTxExec        *UpdatePoolRegistryTxExecutor
	initializeDialTxExec            *InitializeDialTxExecutor
	updateRewardTokenTxExec         *UpdateRewardTokenTxExecutor
}

// NewExecutor creates a new instance of Executor. maxFee is the maximum fee
// pushed to the token layer together with every scheduled rate.
func NewExecutor(programID types.PublicKey, maxFee uint64) *Executor {
	executor := &Executor{
		programID:                       programID,
		initializeTxExec:                NewInitializeTxExecutor(programID),
		setLaunchTimeTxExec:             NewSetLaunchTimeTxExecutor(),
		updateTransferFeeTxExec:         NewUpdateTransferFeeTxExecutor(maxFee),
		harvestFeesTxExec:               NewHarvestFeesTxExecutor(),
		distributeRewardsTxExec:         NewDistributeRewardsTxExecutor(),
		manageExclusionsTxExec:          NewManageExclusionsTxExecutor(),
		updateConfigTxExec:              NewUpdateConfigTxExecutor(),
		emergencyWithdrawTxExec:         NewEmergencyWithdrawTxExecutor(),
		emergencyWithdrawWithheldTxExec: NewEmergencyWithdrawWithheldTxExecutor(),
		updatePoolRegistryTxExec:        NewUpdatePoolRegistryTxExecutor(),
		initializeDialTxExec:            NewInitializeDialTxExecutor(),
		updateRewardTokenTxExec:         NewUpdateRewardTokenTxExecutor(),
	}

	return executor
}

// ProgramID returns the program the custody addresses are derived from
func (exec *Executor) ProgramID() types.PublicKey {
	return exec.programID
}

// ExecuteTx runs tx against view. The caller owns view and must drop it when
// the returned result is an error, so a rejected call leaves no trace.
func (exec *Executor) ExecuteTx(ctx *CallContext, view *st.StoreView, tx types.Tx) result.Result {
	name := types.TxName(tx)

	res := exec.sanityCheck(ctx, view, tx)
	if res.IsError() {
		logger.Debugf("Rejected %v in sanity check: %v", name, res)
		return res
	}

	res = exec.process(ctx, view, tx)
	if res.IsError() {
		logger.Debugf("Rejected %v: %v", name, res)
		return res
	}

	logger.Infof("Executed %v, mint: %v, signer: %v, message: %v", name, tx.GetMint(), tx.GetSigner(), res.Message)
	return res
}

func (exec *Executor) sanityCheck(ctx *CallContext, view *st.StoreView, tx types.Tx) result.Result {
	var sanityCheckResult result.Result
	txExecutor := exec.getTxExecutor(tx)
	if txExecutor != nil {
		sanityCheckResult = txExecutor.sanityCheck(ctx, view, tx)
	} else {
		sanityCheckResult = result.ErrUnknownTx
	}

	return sanityCheckResult
}

func (exec *Executor) process(ctx *CallContext, view *st.StoreView, tx types.Tx) result.Result {
	var processResult result.Result
	txExecutor := exec.getTxExecutor(tx)
	if txExecutor != nil {
		processResult = txExecutor.process(ctx, view, tx)
	} else {
		processResult = result.ErrUnknownTx
	}

	return processResult
}

func (exec *Executor) getTxExecutor(tx types.Tx) TxExecutor {
	var txExecutor TxExecutor
	switch tx.(type) {
	case *types.InitializeTx:
		txExecutor = exec.initializeTxExec
	case *types.SetLaunchTimeTx:
		txExecutor = exec.setLaunchTimeTxExec
	case *types.UpdateTransferFeeTx:
		txExecutor = exec.updateTransferFeeTxExec
	case *types.HarvestFeesTx:
		txExecutor = exec.harvestFeesTxExec
	case *types.DistributeRewardsTx:
		txExecutor = exec.distributeRewardsTxExec
	case *types.ManageExclusionsTx:
		txExecutor = exec.manageExclusionsTxExec
	case *types.UpdateConfigTx:
		txExecutor = exec.updateConfigTxExec
	case *types.EmergencyWithdrawTx:
		txExecutor = exec.emergencyWithdrawTxExec
	case *types.EmergencyWithdrawWithheldTx:
		txExecutor = exec.emergencyWithdrawWithheldTxExec
	case *types.UpdatePoolRegistryTx:
		txExecutor = exec.updatePoolRegistryTxExec
	case *types.InitializeDialTx:
		txExecutor = exec.initializeDialTxExec
	case *types.UpdateRewardTokenTx:
		txExecutor = exec.updateRewardTokenTxExec
	default:
		txExecutor = nil
	}
	return txExecutor
}
