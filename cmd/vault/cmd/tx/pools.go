package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// poolsCmd represents the pools command
var poolsCmd = &cobra.Command{
	Use:     "pools",
	Short:   "Register liquidity pools",
	Example: `vault tx pools --signer=<keeper> --mint=<mint> --add=<pool1>,<pool2>`,
	Run:     doPoolsCmd,
}

func doPoolsCmd(cmd *cobra.Command, args []string) {
	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.UpdatePoolRegistryTx{
		Signer: utils.Signer(),
		Mint:   utils.Mint(),
		Pools:  utils.ParseAddresses("pool", poolsFlag),
	})
}

func init() {
	poolsCmd.Flags().StringSliceVar(&poolsFlag, "add", []string{}, "Pool accounts to register")
	poolsCmd.MarkFlagRequired("add")
}
