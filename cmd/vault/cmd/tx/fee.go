package tx

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// feeCmd represents the fee command. Without --bps the fee the schedule
// requires now is pushed.
var feeCmd = &cobra.Command{
	Use:     "fee",
	Short:   "Push the scheduled transfer fee",
	Example: `vault tx fee --signer=<keeper> --mint=<mint>`,
	Run:     doFeeCmd,
}

func doFeeCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	l, db := utils.OpenLedger()
	defer db.Close()

	bps := bpsFlag
	if !cmd.Flags().Changed("bps") {
		vault := l.GetVault(mint)
		if vault == nil {
			utils.Error("No vault for mint %v", mint)
		}
		stage, required := vault.FeeScheduleAt(l.Clock().Now())
		fmt.Printf("Schedule stage %v requires %v bps\n", stage, required)
		bps = required
	}

	utils.ExecuteTx(l, &types.UpdateTransferFeeTx{
		Signer:    utils.Signer(),
		Mint:      mint,
		NewFeeBps: bps,
	})
}

func init() {
	feeCmd.Flags().Uint16Var(&bpsFlag, "bps", 0, "Fee in basis points (default to the schedule)")
}
