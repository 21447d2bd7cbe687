package query

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/dial"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/rpc"
)

// dialCmd represents the dial command
var dialCmd = &cobra.Command{
	Use:     "dial",
	Short:   "Show the reward token scheduler",
	Example: `vault query dial --mint=<mint>`,
	Run:     doDialCmd,
}

type dialOutput struct {
	Dial       *types.DialState
	NextUpdate time.Time
}

func doDialCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	if queryRemote("vault.GetDialState", &rpc.GetDialStateArgs{Mint: mint}, &rpc.GetDialStateResult{}) {
		return
	}
	l, db := utils.OpenLedger()
	defer db.Close()

	d := l.GetDialState(mint)
	if d == nil {
		utils.Error("No reward token scheduler for mint %v", mint)
	}
	utils.PrintJSON(&dialOutput{
		Dial:       d,
		NextUpdate: dial.NextUpdateTime(d, l.Clock().Now()),
	})
}
