package tx

import (
	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	"github.com/mikotoken/vault/ledger/types"
)

// configCmd represents the config command. Only the flags given are changed.
var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Change vault configuration",
	Example: `vault tx config --signer=<authority> --mint=<mint> --min-hold=5000000 --paused=false`,
	Run:     doConfigCmd,
}

func doConfigCmd(cmd *cobra.Command, args []string) {
	tx := &types.UpdateConfigTx{
		Signer:              utils.Signer(),
		Mint:                utils.Mint(),
		NewAuthority:        utils.OptionalAddress(cmd, "authority", authorityFlag),
		NewKeeperAuthority:  utils.OptionalAddress(cmd, "keeper", keeperFlag),
		NewOwnerWallet:      utils.OptionalAddress(cmd, "owner", ownerFlag),
		NewTreasury:         utils.OptionalAddress(cmd, "treasury", treasuryFlag),
		NewRewardTokenMint:  utils.OptionalAddress(cmd, "reward-mint", rewardMintFlag),
		NewMinHoldAmount:    utils.OptionalUint64(cmd, "min-hold", minHoldFlag),
		NewHarvestThreshold: utils.OptionalUint64(cmd, "harvest-threshold", thresholdFlag),
	}
	if cmd.Flags().Changed("paused") {
		tx.Paused = types.BoolPtr(pausedFlag)
	}

	l, db := utils.OpenLedger()
	defer db.Close()

	utils.ExecuteTx(l, tx)
	if tx.NewOwnerWallet != nil || tx.NewTreasury != nil || tx.NewRewardTokenMint != nil {
		if err := l.OpenVaultAccounts(tx.Mint); err != nil {
			utils.Error("Failed to open vault token accounts: %v", err)
		}
	}
}

func init() {
	configCmd.Flags().StringVar(&authorityFlag, "authority", "", "New admin authority")
	configCmd.Flags().StringVar(&keeperFlag, "keeper", "", "New keeper authority")
	configCmd.Flags().StringVar(&ownerFlag, "owner", "", "New owner wallet")
	configCmd.Flags().StringVar(&treasuryFlag, "treasury", "", "New treasury wallet")
	configCmd.Flags().StringVar(&rewardMintFlag, "reward-mint", "", "New reward token mint")
	configCmd.Flags().Uint64Var(&minHoldFlag, "min-hold", 0, "New minimum holding")
	configCmd.Flags().Uint64Var(&thresholdFlag, "harvest-threshold", 0, "New keeper harvest threshold")
	configCmd.Flags().BoolVar(&pausedFlag, "paused", false, "Pause or resume the vault")
}
