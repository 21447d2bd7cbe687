package rpc

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger/dial"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
)

// ------------------------------- GetStatus -----------------------------------

type GetStatusArgs struct{}

type GetStatusResult struct {
	ProgramID types.PublicKey `json:"program_id"`
	Now       time.Time       `json:"now"`
	TxEnabled bool            `json:"tx_enabled"`
}

func (t *VaultRPCService) GetStatus(args *GetStatusArgs, result *GetStatusResult) (err error) {
	result.ProgramID = t.ledger.ProgramID()
	result.Now = t.ledger.Clock().Now().UTC()
	result.TxEnabled = t.enableTx
	return nil
}

// ------------------------------- GetVault -----------------------------------

type GetVaultArgs struct {
	Mint types.PublicKey `json:"mint"`
}

type GetVaultResult struct {
	Vault           *types.VaultState `json:"vault"`
	FeeStage        string            `json:"fee_stage"`
	ScheduledFeeBps uint16            `json:"scheduled_fee_bps"`
	MintWithheld    common.JSONUint64 `json:"mint_withheld"`
	CustodyBalance  common.JSONUint64 `json:"custody_balance"`
}

func (t *VaultRPCService) GetVault(args *GetVaultArgs, result *GetVaultResult) (err error) {
	vault := t.ledger.GetVault(args.Mint)
	if vault == nil {
		return errors.Errorf("no vault for mint %v", args.Mint)
	}

	stage, bps := vault.FeeScheduleAt(t.ledger.Clock().Now())
	result.Vault = vault
	result.FeeStage = stage.String()
	result.ScheduledFeeBps = bps

	t.ledger.Query(func(view *st.StoreView, tokens *token.Ledger) {
		var withheld, balance uint64
		if withheld, err = tokens.WithheldAmount(args.Mint); err != nil {
			return
		}
		custody, derr := vault.CustodyAddress(args.Mint)
		if derr != nil {
			err = derr
			return
		}
		if tokens.GetAccount(custody) != nil {
			if balance, err = tokens.Balance(custody); err != nil {
				return
			}
		}
		result.MintWithheld = common.JSONUint64(withheld)
		result.CustodyBalance = common.JSONUint64(balance)
	})
	return err
}

// ------------------------------- GetPoolRegistry -----------------------------------

type GetPoolRegistryArgs struct {
	Mint types.PublicKey `json:"mint"`
}

type GetPoolRegistryResult struct {
	Registry *types.PoolRegistry `json:"registry"`
}

func (t *VaultRPCService) GetPoolRegistry(args *GetPoolRegistryArgs, result *GetPoolRegistryResult) (err error) {
	registry := t.ledger.GetPoolRegistry(args.Mint)
	if registry == nil {
		return errors.Errorf("no vault for mint %v", args.Mint)
	}
	result.Registry = registry
	return nil
}

// ------------------------------- GetDialState -----------------------------------

type GetDialStateArgs struct {
	Mint types.PublicKey `json:"mint"`
}

type GetDialStateResult struct {
	Dial       *types.DialState `json:"dial"`
	NextUpdate time.Time        `json:"next_update"`
}

func (t *VaultRPCService) GetDialState(args *GetDialStateArgs, result *GetDialStateResult) (err error) {
	d := t.ledger.GetDialState(args.Mint)
	if d == nil {
		return errors.Errorf("no reward token scheduler for mint %v", args.Mint)
	}
	result.Dial = d
	result.NextUpdate = dial.NextUpdateTime(d, t.ledger.Clock().Now())
	return nil
}

// ------------------------------- GetTokenMint -----------------------------------

type GetTokenMintArgs struct {
	Mint types.PublicKey `json:"mint"`
}

type GetTokenMintResult struct {
	Mint *types.TokenMint `json:"mint"`
}

func (t *VaultRPCService) GetTokenMint(args *GetTokenMintArgs, result *GetTokenMintResult) (err error) {
	t.ledger.Query(func(view *st.StoreView, tokens *token.Ledger) {
		result.Mint = tokens.GetMint(args.Mint)
	})
	if result.Mint == nil {
		return errors.Errorf("no mint %v", args.Mint)
	}
	return nil
}

// ------------------------------- GetAccount -----------------------------------

type GetAccountArgs struct {
	Address types.PublicKey `json:"address"`
}

type GetAccountResult struct {
	TokenAccount *types.TokenAccount `json:"token_account,omitempty"`
	Lamports     common.JSONUint64   `json:"lamports"`
}

// GetAccount returns the token account at address, if any, and the native
// balance of address.
func (t *VaultRPCService) GetAccount(args *GetAccountArgs, result *GetAccountResult) (err error) {
	t.ledger.Query(func(view *st.StoreView, tokens *token.Ledger) {
		result.TokenAccount = tokens.GetAccount(args.Address)
		var lamports uint64
		lamports, err = tokens.NativeBalance(args.Address)
		result.Lamports = common.JSONUint64(lamports)
	})
	return err
}

// ------------------------------- GetKeeperReport -----------------------------------

type GetKeeperReportArgs struct {
	Task string `json:"task"`
}

type GetKeeperReportResult struct {
	Report *keeper.RoundReport `json:"report"`
}

func (t *VaultRPCService) GetKeeperReport(args *GetKeeperReportArgs, result *GetKeeperReportResult) (err error) {
	if t.reports == nil {
		return errors.New("no keeper reports on this node")
	}
	report, err := t.reports.Last(args.Task)
	if err != nil {
		return err
	}
	if report == nil {
		return errors.Errorf("no %v round recorded", args.Task)
	}
	result.Report = report
	return nil
}
