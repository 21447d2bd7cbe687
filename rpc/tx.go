package rpc

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger/types"
)

var txFactories = map[string]func() types.Tx{
	"initialize":                  func() types.Tx { return &types.InitializeTx{} },
	"set_launch_time":             func() types.Tx { return &types.SetLaunchTimeTx{} },
	"update_transfer_fee":         func() types.Tx { return &types.UpdateTransferFeeTx{} },
	"harvest_fees":                func() types.Tx { return &types.HarvestFeesTx{} },
	"distribute_rewards":          func() types.Tx { return &types.DistributeRewardsTx{} },
	"manage_exclusions":           func() types.Tx { return &types.ManageExclusionsTx{} },
	"update_config":               func() types.Tx { return &types.UpdateConfigTx{} },
	"emergency_withdraw":          func() types.Tx { return &types.EmergencyWithdrawTx{} },
	"emergency_withdraw_withheld": func() types.Tx { return &types.EmergencyWithdrawWithheldTx{} },
	"update_pool_registry":        func() types.Tx { return &types.UpdatePoolRegistryTx{} },
	"initialize_dial":             func() types.Tx { return &types.InitializeDialTx{} },
	"update_reward_token":         func() types.Tx { return &types.UpdateRewardTokenTx{} },
}

// DecodeTx builds the call named typ from its JSON encoding.
func DecodeTx(typ string, raw json.RawMessage) (types.Tx, error) {
	factory, ok := txFactories[typ]
	if !ok {
		return nil, errors.Errorf("unknown transaction type %q", typ)
	}
	tx := factory()
	if err := json.Unmarshal(raw, tx); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %v", typ)
	}
	return tx, nil
}

// ------------------------------- ExecuteTx -----------------------------------

type ExecuteTxArgs struct {
	Type string          `json:"type"`
	Tx   json.RawMessage `json:"tx"`
}

type ExecuteTxResult struct {
	Code     result.ErrorCode `json:"code"`
	CodeName string           `json:"code_name"`
	Message  string           `json:"message"`
	Log      []string         `json:"log,omitempty"`
}

// ExecuteTx runs one call against the ledger. A rejected call is reported in
// the result, a malformed request as an error.
func (t *VaultRPCService) ExecuteTx(args *ExecuteTxArgs, result *ExecuteTxResult) (err error) {
	if !t.enableTx {
		return errors.New("transaction execution is disabled on this node")
	}

	tx, err := DecodeTx(args.Type, args.Tx)
	if err != nil {
		return err
	}

	res := t.ledger.Execute(tx)
	logger.WithFields(log.Fields{
		"tx":   types.TxName(tx),
		"code": res.Code.String(),
	}).Debug("Executed RPC transaction")

	result.Code = res.Code
	result.CodeName = res.Code.String()
	result.Message = res.Message
	result.Log = res.Log
	return nil
}
