package cmd

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
	"github.com/mikotoken/vault/metrics"
	"github.com/mikotoken/vault/node"
	"github.com/mikotoken/vault/rpc"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the vault node: keeper and RPC server.",
	Run:   runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) {
	l, db := utils.OpenLedger()
	defer db.Close()

	params := &node.Params{
		DB:            db,
		Ledger:        l,
		KeeperEnabled: viper.GetBool(common.CfgKeeperEnabled),
		KeeperConfig:  keeper.ConfigFromViper(),
		RPCEnabled:    viper.GetBool(common.CfgRPCEnabled),
		RPCConfig:     rpc.ConfigFromViper(),
	}
	if params.KeeperEnabled {
		params.KeeperSigner = utils.KeeperSigner()
		params.Mint = utils.Mint()
		if path := viper.GetString(common.CfgKeeperSnapshot); path != "" {
			params.Source = keeper.NewFileSource(path)
		}
	}
	if viper.GetBool(common.CfgMetricsEnabled) {
		params.Metrics = metrics.Default()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	metrics.Start(ctx)

	n := node.NewNode(params)
	n.Start(ctx)
	n.Wait()
}
