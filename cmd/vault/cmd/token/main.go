package token

import (
	"github.com/spf13/cobra"
)

var (
	decimalsFlag   uint8
	feeBpsFlag     uint16
	maxFeeFlag     uint64
	antiSniperFlag bool
	ownerFlag      string
	accountFlag    string
	fromFlag       string
	toFlag         string
	amountFlag     uint64
)

// TokenCmd represents the token command. It drives the reference token
// ledger the vault runs against.
var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the reference token ledger",
}

func init() {
	TokenCmd.AddCommand(createMintCmd)
	TokenCmd.AddCommand(openCmd)
	TokenCmd.AddCommand(mintToCmd)
	TokenCmd.AddCommand(transferCmd)
	TokenCmd.AddCommand(airdropCmd)
	TokenCmd.AddCommand(accountCmd)
	TokenCmd.AddCommand(mintCmd)
}
