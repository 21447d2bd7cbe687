package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikotoken/vault/cmd/vault/cmd/utils"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:     "open",
	Short:   "Open the associated token account of a wallet",
	Example: `vault token open --mint=<mint> --owner=<wallet>`,
	Run:     doOpenCmd,
}

func doOpenCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	owner := utils.ParseAddress("owner", ownerFlag)
	l, db := utils.OpenLedger()
	defer db.Close()

	var account types.PublicKey
	err := l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		var err error
		account, err = tokens.OpenAccount(owner, mint)
		return err
	})
	if err != nil {
		utils.Error("Failed to open account: %v", err)
	}
	fmt.Println(account)
}

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:     "account",
	Short:   "Show a token account, or the native balance of a wallet",
	Example: `vault token account --account=<token account>`,
	Run:     doAccountCmd,
}

func doAccountCmd(cmd *cobra.Command, args []string) {
	addr := utils.ParseAddress("account", accountFlag)
	l, db := utils.OpenLedger()
	defer db.Close()

	var (
		account *types.TokenAccount
		native  uint64
	)
	l.Query(func(view *st.StoreView, tokens *token.Ledger) {
		account = tokens.GetAccount(addr)
		native, _ = tokens.NativeBalance(addr)
	})
	if account != nil {
		utils.PrintJSON(account)
		return
	}
	utils.PrintJSON(&types.NativeAccount{Address: addr, Lamports: native})
}

// transferCmd represents the transfer command. The fee of the mint is
// withheld in the destination account.
var transferCmd = &cobra.Command{
	Use:     "transfer",
	Short:   "Transfer tokens",
	Example: `vault token transfer --signer=<owner> --mint=<mint> --from=<token account> --to=<token account> --amount=1000`,
	Run:     doTransferCmd,
}

func doTransferCmd(cmd *cobra.Command, args []string) {
	mint := utils.Mint()
	signer := utils.Signer()
	from := utils.ParseAddress("source", fromFlag)
	to := utils.ParseAddress("destination", toFlag)
	l, db := utils.OpenLedger()
	defer db.Close()

	err := l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		decimals, err := tokens.Decimals(mint)
		if err != nil {
			return err
		}
		return tokens.Transfer(mint, from, to, signer, amountFlag, decimals)
	})
	if err != nil {
		utils.Error("Failed to transfer: %v", err)
	}
	fmt.Printf("Transferred %v from %v to %v\n", amountFlag, from, to)
}

// airdropCmd represents the airdrop command
var airdropCmd = &cobra.Command{
	Use:     "airdrop",
	Short:   "Credit native value to an address",
	Example: `vault token airdrop --to=<address> --amount=1000000000`,
	Run:     doAirdropCmd,
}

func doAirdropCmd(cmd *cobra.Command, args []string) {
	to := utils.ParseAddress("destination", toFlag)
	l, db := utils.OpenLedger()
	defer db.Close()

	if err := l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		return tokens.Airdrop(to, amountFlag)
	}); err != nil {
		utils.Error("Failed to airdrop: %v", err)
	}
	fmt.Printf("Airdropped %v to %v\n", amountFlag, to)
}

func init() {
	openCmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner wallet")
	openCmd.MarkFlagRequired("owner")

	accountCmd.Flags().StringVar(&accountFlag, "account", "", "Token account or wallet")
	accountCmd.MarkFlagRequired("account")

	transferCmd.Flags().StringVar(&fromFlag, "from", "", "Source token account")
	transferCmd.Flags().StringVar(&toFlag, "to", "", "Destination token account")
	transferCmd.Flags().Uint64Var(&amountFlag, "amount", 0, "Amount in base units")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("amount")

	airdropCmd.Flags().StringVar(&toFlag, "to", "", "Destination address")
	airdropCmd.Flags().Uint64Var(&amountFlag, "amount", 0, "Lamports")
	airdropCmd.MarkFlagRequired("to")
	airdropCmd.MarkFlagRequired("amount")
}
