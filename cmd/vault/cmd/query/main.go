package query

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/rpc"
)

var (
	taskFlag   string
	remoteFlag string
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query vault records",
}

func init() {
	QueryCmd.PersistentFlags().StringVar(&remoteFlag, "remote", "", "RPC endpoint of a running node, e.g. http://localhost:16900/rpc")

	QueryCmd.AddCommand(vaultCmd)
	QueryCmd.AddCommand(poolsCmd)
	QueryCmd.AddCommand(dialCmd)
	QueryCmd.AddCommand(reportCmd)
}

// queryRemote calls method on the --remote node and prints the result. It
// returns false when no remote node is set.
func queryRemote(method string, args interface{}, result interface{}) bool {
	if remoteFlag == "" {
		return false
	}
	client, err := rpc.NewClient(remoteFlag)
	if err != nil {
		utils.Error("Failed to connect to %v: %v", remoteFlag, err)
	}
	if err := client.Call(method, []interface{}{args}, result); err != nil {
		utils.Error("Failed to call %v: %v", method, err)
	}
	utils.PrintJSON(result)
	return true
}
