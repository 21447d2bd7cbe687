package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// initializeCmd represents the initialize command
// Example:
//
//	vault tx initialize --signer=<authority> --mint=<mint> --authority=<authority> --keeper=<keeper> --owner=<owner> --min-hold=1000000
var initializeCmd = &cobra.Command{
	Use:     "initialize",
	Short:   "Create the vault of a token mint",
	Example: `vault tx initialize --signer=<authority> --mint=<mint> --authority=<authority> --keeper=<keeper> --owner=<owner> --min-hold=1000000`,
	Run:     doInitializeCmd,
}

func doInitializeCmd(cmd *cobra.Command, args []string) {
	tx := &types.InitializeTx{
		Signer:          utils.Signer(),
		Mint:            utils.Mint(),
		Authority:       utils.ParseAddress("authority", authorityFlag),
		KeeperAuthority: utils.ParseAddress("keeper", keeperFlag),
		OwnerWallet:     utils.ParseAddress("owner", ownerFlag),
		MinHoldAmount:   minHoldFlag,
	}
	if treasuryFlag != "" {
		tx.Treasury = utils.ParseAddress("treasury", treasuryFlag)
	}
	if rewardMintFlag != "" {
		tx.RewardTokenMint = utils.ParseAddress("reward mint", rewardMintFlag)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, tx)
	if err := l.OpenVaultAccounts(tx.Mint); err != nil {
		utils.Error("Failed to open vault token accounts: %v", err)
	}
}

func init() {
	initializeCmd.Flags().StringVar(&authorityFlag, "authority", "", "Admin authority")
	initializeCmd.Flags().StringVar(&keeperFlag, "keeper", "", "Keeper authority")
	initializeCmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner wallet")
	initializeCmd.Flags().StringVar(&treasuryFlag, "treasury", "", "Treasury wallet (default to authority)")
	initializeCmd.Flags().StringVar(&rewardMintFlag, "reward-mint", "", "Reward token mint (default to native)")
	initializeCmd.Flags().Uint64Var(&minHoldFlag, "min-hold", 0, "Minimum holding to receive rewards")

	initializeCmd.MarkFlagRequired("authority")
	initializeCmd.MarkFlagRequired("keeper")
	initializeCmd.MarkFlagRequired("owner")
}
