package query

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/rpc"
	"github.com/mikotoken/vault/store/kvstore"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:     "report",
	Short:   "Show the last keeper round of a task",
	Example: `vault query report --task=harvest`,
	Run:     doReportCmd,
}

func doReportCmd(cmd *cobra.Command, args []string) {
	if queryRemote("vault.GetKeeperReport", &rpc.GetKeeperReportArgs{Task: taskFlag}, &rpc.GetKeeperReportResult{}) {
		return
	}
	db := utils.OpenDatabase()
	defer db.Close()

	report, err := keeper.NewReportStore(kvstore.NewKVStore(db)).Last(taskFlag)
	if err != nil {
		utils.Error("%v", err)
	}
	if report == nil {
		utils.Error("No %v round recorded", taskFlag)
	}
	utils.PrintJSON(report)
}

func init() {
	reportCmd.Flags().StringVar(&taskFlag, "task", keeper.TaskHarvest, "Task: harvest, distribution or fee_schedule")
}
