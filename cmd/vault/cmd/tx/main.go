package tx

import (
	"github.com/spf13/cobra"
)

// Common flags used in Tx sub commands.
var (
	authorityFlag   string
	keeperFlag      string
	ownerFlag       string
	treasuryFlag    string
	rewardMintFlag  string
	minHoldFlag     uint64
	thresholdFlag   uint64
	pausedFlag      bool
	bpsFlag         uint16
	accountsFlag    []string
	snapshotFlag    string
	totalFlag       uint64
	poolFlag        uint64
	walletFlag      string
	kindFlag        string
	assetFlag       string
	toFlag          string
	amountFlag      uint64
	allFlag         bool
	poolsFlag       []string
	launchFlag      uint64
	rewardTokenFlag string
)

// TxCmd represents the Tx command
var TxCmd = &cobra.Command{
	Use:   "tx",
	Short: "Execute vault calls",
	Long:  `Execute vault calls. Every call is atomic and signed as --signer.`,
}

func init() {
	TxCmd.AddCommand(initializeCmd)
	TxCmd.AddCommand(launchCmd)
	TxCmd.AddCommand(feeCmd)
	TxCmd.AddCommand(harvestCmd)
	TxCmd.AddCommand(distributeCmd)
	TxCmd.AddCommand(excludeCmd)
	TxCmd.AddCommand(configCmd)
	TxCmd.AddCommand(withdrawCmd)
	TxCmd.AddCommand(withdrawWithheldCmd)
	TxCmd.AddCommand(poolsCmd)
	TxCmd.AddCommand(dialCmd)
	TxCmd.AddCommand(rewardTokenCmd)
}
