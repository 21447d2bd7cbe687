package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// withdrawCmd represents the withdraw command
// Example:
//
//	vault tx withdraw --signer=<authority> --mint=<mint> --asset=native --to=<wallet> --all
//	vault tx withdraw --signer=<authority> --mint=<mint> --asset=<mint> --to=<token account> --amount=1000
var withdrawCmd = &cobra.Command{
	Use:     "withdraw",
	Short:   "Withdraw custodied tokens or native value",
	Example: `vault tx withdraw --signer=<authority> --mint=<mint> --asset=native --to=<wallet> --all`,
	Run:     doWithdrawCmd,
}

func doWithdrawCmd(cmd *cobra.Command, args []string) {
	asset := types.NativeMint
	if assetFlag != "native" {
		asset = utils.ParseAddress("asset", assetFlag)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.EmergencyWithdrawTx{
		Signer:      utils.Signer(),
		Mint:        utils.Mint(),
		Asset:       asset,
		Destination: utils.ParseAddress("destination", toFlag),
		Amount:      amountFlag,
		All:         allFlag,
	})
}

// withdrawWithheldCmd represents the withdraw-withheld command
var withdrawWithheldCmd = &cobra.Command{
	Use:     "withdraw-withheld",
	Short:   "Withdraw withheld fees straight from token accounts",
	Example: `vault tx withdraw-withheld --signer=<authority> --mint=<mint> --accounts=<a1>,<a2> --to=<token account>`,
	Run:     doWithdrawWithheldCmd,
}

func doWithdrawWithheldCmd(cmd *cobra.Command, args []string) {
	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.EmergencyWithdrawWithheldTx{
		Signer:      utils.Signer(),
		Mint:        utils.Mint(),
		Accounts:    utils.ParseAddresses("account", accountsFlag),
		Destination: utils.ParseAddress("destination", toFlag),
	})
}

func init() {
	withdrawCmd.Flags().StringVar(&assetFlag, "asset", "native", "Asset mint, or native")
	withdrawCmd.Flags().StringVar(&toFlag, "to", "", "Destination wallet for native, token account otherwise")
	withdrawCmd.Flags().Uint64Var(&amountFlag, "amount", 0, "Amount to withdraw")
	withdrawCmd.Flags().BoolVar(&allFlag, "all", false, "Withdraw the whole balance")
	withdrawCmd.MarkFlagRequired("to")

	withdrawWithheldCmd.Flags().StringSliceVar(&accountsFlag, "accounts", []string{}, "Token accounts to drain, up to 20")
	withdrawWithheldCmd.Flags().StringVar(&toFlag, "to", "", "Destination token account")
	withdrawWithheldCmd.MarkFlagRequired("accounts")
	withdrawWithheldCmd.MarkFlagRequired("to")
}
