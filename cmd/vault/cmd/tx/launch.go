package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:     "launch",
	Short:   "Record the launch time",
	Example: `vault tx launch --signer=<any> --mint=<mint>`,
	Run:     doLaunchCmd,
}

func doLaunchCmd(cmd *cobra.Command, args []string) {
	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.SetLaunchTimeTx{
		Signer: utils.Signer(),
		Mint:   utils.Mint(),
	})
}
