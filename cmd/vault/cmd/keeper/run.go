package keeper

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger"
	"github.com/mikotoken/vault/metrics"
	"github.com/mikotoken/vault/store/database"
	"github.com/mikotoken/vault/store/kvstore"
)

// runCmd represents the keeper run command
var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run the keeper until interrupted",
	Example: `vault keeper run --signer=<keeper> --mint=<mint> --snapshot=holders.json`,
	Run:     doRunCmd,
}

func newKeeper(l *ledger.Ledger, db database.Database) *keeper.Keeper {
	var source keeper.HolderSource
	if snapshotFlag != "" {
		source = keeper.NewFileSource(snapshotFlag)
	}
	k := keeper.NewKeeper(l, utils.KeeperSigner(), utils.Mint(), source, keeper.NewReportStore(kvstore.NewKVStore(db)), keeper.ConfigFromViper())
	if viper.GetBool(common.CfgMetricsEnabled) {
		k.SetMetrics(metrics.Default())
	}
	return k
}

func doRunCmd(cmd *cobra.Command, args []string) {
	l, db := utils.OpenLedger()
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	metrics.Start(ctx)

	k := newKeeper(l, db)
	k.Start(ctx)
	k.Wait()
}

// roundCmd represents the keeper round command
var roundCmd = &cobra.Command{
	Use:     "round",
	Short:   "Run one keeper round of a task",
	Example: `vault keeper round --signer=<keeper> --mint=<mint> --task=distribution --snapshot=holders.json`,
	Run:     doRoundCmd,
}

func doRoundCmd(cmd *cobra.Command, args []string) {
	l, db := utils.OpenLedger()
	defer db.Close()

	k := newKeeper(l, db)

	var (
		report *keeper.RoundReport
		err    error
	)
	switch taskFlag {
	case keeper.TaskFeeSchedule:
		report, err = k.PushFeeSchedule()
	case keeper.TaskHarvest, keeper.TaskDistribution:
		if snapshotFlag == "" {
			utils.Error("The %v round needs --snapshot", taskFlag)
		}
		snapshot, lerr := keeper.LoadSnapshot(snapshotFlag)
		if lerr != nil {
			utils.Error("%v", lerr)
		}
		if taskFlag == keeper.TaskHarvest {
			report, err = k.HarvestAll(snapshot.HarvestAccounts(utils.Mint()))
		} else {
			report, err = k.DistributeAll(snapshot.Holders)
		}
	default:
		utils.Error("Unknown task %q", taskFlag)
	}
	utils.PrintJSON(report)
	if err != nil {
		utils.Error("%v", err)
	}
}

func init() {
	runCmd.Flags().StringVar(&snapshotFlag, "snapshot", "", "Holder snapshot file, reloaded every round")

	roundCmd.Flags().StringVar(&snapshotFlag, "snapshot", "", "Holder snapshot file")
	roundCmd.Flags().StringVar(&taskFlag, "task", keeper.TaskHarvest, "Task: harvest, distribution or fee_schedule")
}
