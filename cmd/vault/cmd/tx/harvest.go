package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger/types"
)

// harvestCmd represents the harvest command
// Example:
//
//	vault tx harvest --signer=<keeper> --mint=<mint> --accounts=<a1>,<a2>
//	vault tx harvest --signer=<keeper> --mint=<mint> --snapshot=holders.json
var harvestCmd = &cobra.Command{
	Use:     "harvest",
	Short:   "Harvest withheld fees and split them to owner and treasury",
	Example: `vault tx harvest --signer=<keeper> --mint=<mint> --accounts=<a1>,<a2>`,
	Run:     doHarvestCmd,
}

func doHarvestCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()

	var accounts []types.PublicKey
	switch {
	case len(accountsFlag) > 0:
		accounts = utils.ParseAddresses("account", accountsFlag)
	case snapshotFlag != "":
		snapshot, err := keeper.LoadSnapshot(snapshotFlag)
		if err != nil {
			utils.Error("%v", err)
		}
		accounts = snapshot.HarvestAccounts(mint)
	default:
		utils.Error("Either --accounts or --snapshot is required")
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.HarvestFeesTx{
		Signer:   utils.Signer(),
		Mint:     mint,
		Accounts: accounts,
	})
}

func init() {
	harvestCmd.Flags().StringSliceVar(&accountsFlag, "accounts", []string{}, "Token accounts to harvest, up to 20")
	harvestCmd.Flags().StringVar(&snapshotFlag, "snapshot", "", "Holder snapshot file the accounts are read from")
}
