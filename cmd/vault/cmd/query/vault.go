package query

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/rpc"
)

// vaultCmd represents the vault command
var vaultCmd = &cobra.Command{
	Use:     "vault",
	Short:   "Show the vault record and its fee schedule",
	Example: `vault query vault --mint=<mint>`,
	Run:     doVaultCmd,
}

type vaultOutput struct {
	Vault           *types.VaultState
	FeeStage        string
	ScheduledFeeBps uint16
	MintWithheld    uint64
	CustodyBalance  uint64
}

func doVaultCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	if queryRemote("vault.GetVault", &rpc.GetVaultArgs{Mint: mint}, &rpc.GetVaultResult{}) {
		return
	}
	l, db := utils.OpenLedger()
	defer db.Close()

	vault := l.GetVault(mint)
	if vault == nil {
		utils.Error("No vault for mint %v", mint)
	}
	stage, bps := vault.FeeScheduleAt(l.Clock().Now())
	out := &vaultOutput{
		Vault:           vault,
		FeeStage:        stage.String(),
		ScheduledFeeBps: bps,
	}
	l.Query(func(view *st.StoreView, tokens *token.Ledger) {
		out.MintWithheld, _ = tokens.WithheldAmount(mint)
		if custody, err := vault.CustodyAddress(mint); err == nil {
			out.CustodyBalance, _ = tokens.Balance(custody)
		}
	})
	utils.PrintJSON(out)
}

// poolsCmd represents the pools command
var poolsCmd = &cobra.Command{
	Use:     "pools",
	Short:   "Show the liquidity pool registry",
	Example: `vault query pools --mint=<mint>`,
	Run:     doPoolsCmd,
}

func doPoolsCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	if queryRemote("vault.GetPoolRegistry", &rpc.GetPoolRegistryArgs{Mint: mint}, &rpc.GetPoolRegistryResult{}) {
		return
	}
	l, db := utils.OpenLedger()
	defer db.Close()

	registry := l.GetPoolRegistry(mint)
	if registry == nil {
		utils.Error("No vault for mint %v", mint)
	}
	utils.PrintJSON(registry)
}
