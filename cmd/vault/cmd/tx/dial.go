package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// dialCmd represents the dial command
var dialCmd = &cobra.Command{
	Use:     "dial",
	Short:   "Create the reward token scheduler",
	Example: `vault tx dial --signer=<authority> --mint=<mint>`,
	Run:     doDialCmd,
}

func doDialCmd(cmd *cobra.Command, args []string) {
	tx := &types.InitializeDialTx{
		Signer:          utils.Signer(),
		Mint:            utils.Mint(),
		LaunchTimestamp: launchFlag,
	}
	if treasuryFlag != "" {
		tx.Treasury = utils.ParseAddress("treasury", treasuryFlag)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, tx)
}

// rewardTokenCmd represents the reward-token command
var rewardTokenCmd = &cobra.Command{
	Use:     "reward-token",
	Short:   "Select the next reward token",
	Example: `vault tx reward-token --signer=<authority> --mint=<mint> --token=<reward mint>`,
	Run:     doRewardTokenCmd,
}

func doRewardTokenCmd(cmd *cobra.Command, args []string) {
	token := types.NativeMint
	if rewardTokenFlag != "native" {
		token = utils.ParseAddress("reward token", rewardTokenFlag)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	mint := utils.Mint()
	utils.ExecuteTx(l, &types.UpdateRewardTokenTx{
		Signer:         utils.Signer(),
		Mint:           mint,
		NewRewardToken: token,
	})
	if err := l.OpenVaultAccounts(mint); err != nil {
		utils.Error("Failed to open vault token accounts: %v", err)
	}
}

func init() {
	dialCmd.Flags().StringVar(&treasuryFlag, "treasury", "", "Scheduler treasury (default to the vault's)")
	dialCmd.Flags().Uint64Var(&launchFlag, "launch", 0, "Launch timestamp (default to the vault's)")

	rewardTokenCmd.Flags().StringVar(&rewardTokenFlag, "token", "", "Reward token mint, or native")
	rewardTokenCmd.MarkFlagRequired("token")
}
