package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
)

// createMintCmd represents the create-mint command. The fee and withdraw
// authorities are the vault address of the mint.
var createMintCmd = &cobra.Command{
	Use:     "create-mint",
	Short:   "Create a mint with the transfer fee extension",
	Example: `vault token create-mint --mint=<mint> --decimals=9 --fee-bps=500 --anti-sniper`,
	Run:     doCreateMintCmd,
}

func doCreateMintCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	l, db := utils.OpenLedger()
	defer db.Close()

	vaultAddr, _, err := types.FindVaultAddress(l.ProgramID(), mint)
	if err != nil {
		utils.Error("Failed to derive the vault address: %v", err)
	}
	err = l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		return tokens.CreateMint(&types.TokenMint{
			Address:           mint,
			Decimals:          decimalsFlag,
			TransferFeeBps:    feeBpsFlag,
			MaximumFee:        maxFeeFlag,
			FeeAuthority:      vaultAddr,
			WithdrawAuthority: vaultAddr,
			AntiSniper:        antiSniperFlag,
		})
	})
	if err != nil {
		utils.Error("Failed to create mint: %v", err)
	}
	fmt.Printf("Created mint %v, vault address %v\n", mint, vaultAddr)
}

// mintCmd represents the mint command
var mintCmd = &cobra.Command{
	Use:     "mint",
	Short:   "Show a mint",
	Example: `vault token mint --mint=<mint>`,
	Run:     doMintCmd,
}

func doMintCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	l, db := utils.OpenLedger()
	defer db.Close()

	var record *types.TokenMint
	l.Query(func(view *st.StoreView, tokens *token.Ledger) {
		record = tokens.GetMint(mint)
	})
	if record == nil {
		utils.Error("No mint %v", mint)
	}
	utils.PrintJSON(record)
}

// mintToCmd represents the mint-to command
var mintToCmd = &cobra.Command{
	Use:     "mint-to",
	Short:   "Issue supply into a token account",
	Example: `vault token mint-to --account=<token account> --amount=1000000000`,
	Run:     doMintToCmd,
}

func doMintToCmd(cmd *cobra.Command, args []string) {
	account := utils.ParseAddress("account", accountFlag)
	l, db := utils.OpenLedger()
	defer db.Close()

	if err := l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		return tokens.MintTo(account, amountFlag)
	}); err != nil {
		utils.Error("Failed to mint: %v", err)
	}
	fmt.Printf("Minted %v into %v\n", amountFlag, account)
}

func init() {
	createMintCmd.Flags().Uint8Var(&decimalsFlag, "decimals", types.DefaultTokenDecimals, "Mint decimals")
	createMintCmd.Flags().Uint16Var(&feeBpsFlag, "fee-bps", 0, "Initial transfer fee in basis points")
	createMintCmd.Flags().Uint64Var(&maxFeeFlag, "max-fee", ^uint64(0), "Maximum fee of a single transfer")
	createMintCmd.Flags().BoolVar(&antiSniperFlag, "anti-sniper", false, "Cap transfers right after launch")

	mintToCmd.Flags().StringVar(&accountFlag, "account", "", "Token account")
	mintToCmd.Flags().Uint64Var(&amountFlag, "amount", 0, "Amount in base units")
	mintToCmd.MarkFlagRequired("account")
	mintToCmd.MarkFlagRequired("amount")
}
