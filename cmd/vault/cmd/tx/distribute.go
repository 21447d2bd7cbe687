package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger/types"
)

// distributeCmd represents the distribute command. It submits one call, use
// keeper distribute for snapshots above the batch limit.
var distributeCmd = &cobra.Command{
	Use:     "distribute",
	Short:   "Distribute rewards to a holder snapshot",
	Example: `vault tx distribute --signer=<keeper> --mint=<mint> --snapshot=holders.json`,
	Run:     doDistributeCmd,
}

func doDistributeCmd(cmd *cobra.Command, args []string) {
	snapshot, err := keeper.LoadSnapshot(snapshotFlag)
	if err != nil {
		utils.Error("%v", err)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, &types.DistributeRewardsTx{
		Signer:        utils.Signer(),
		Mint:          utils.Mint(),
		Holders:       snapshot.Holders,
		SnapshotTotal: utils.OptionalUint64(cmd, "total", totalFlag),
		RewardPool:    utils.OptionalUint64(cmd, "pool", poolFlag),
	})
}

func init() {
	distributeCmd.Flags().StringVar(&snapshotFlag, "snapshot", "", "Holder snapshot file")
	distributeCmd.Flags().Uint64Var(&totalFlag, "total", 0, "Eligible total of the round")
	distributeCmd.Flags().Uint64Var(&poolFlag, "pool", 0, "Reward pool of the round")
	distributeCmd.MarkFlagRequired("snapshot")
}
