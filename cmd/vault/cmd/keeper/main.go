package keeper

import (
	"github.com/spf13/cobra"
)

var (
	snapshotFlag string
	taskFlag     string
)

// KeeperCmd represents the keeper command
var KeeperCmd = &cobra.Command{
	Use:   "keeper",
	Short: "Run keeper rounds",
}

func init() {
	KeeperCmd.AddCommand(runCmd)
	KeeperCmd.AddCommand(roundCmd)
}
