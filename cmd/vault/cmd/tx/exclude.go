package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// excludeCmd represents the exclude command
// Example:
//
//	vault tx exclude add --signer=<authority> --mint=<mint> --wallet=<wallet> --kind=both
//	vault tx exclude remove --signer=<authority> --mint=<mint> --wallet=<wallet> --kind=reward
var excludeCmd = &cobra.Command{
	Use:       "exclude add|remove",
	Short:     "Add or remove fee and reward exclusions",
	Example:   `vault tx exclude add --signer=<authority> --mint=<mint> --wallet=<wallet> --kind=both`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"add", "remove"},
	Run:       doExcludeCmd,
}

func doExcludeCmd(cmd *cobra.Command, args []string) {
	action := types.ExclusionAdd
	if args[0] == "remove" {
		action = types.ExclusionRemove
	}
	kind, err := types.ParseExclusionKind(kindFlag)
	if err != nil {
		utils.Error("%v", err)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.ManageExclusionsTx{
		Signer: utils.Signer(),
		Mint:   utils.Mint(),
		Action: action,
		Kind:   kind,
		Wallet: utils.ParseAddress("wallet", walletFlag),
	})
}

func init() {
	excludeCmd.Flags().StringVar(&walletFlag, "wallet", "", "Wallet to exclude")
	excludeCmd.Flags().StringVar(&kindFlag, "kind", "both", "Exclusion kind: fee, reward or both")
	excludeCmd.MarkFlagRequired("wallet")
}
