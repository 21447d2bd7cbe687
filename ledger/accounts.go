package ledger

import (
	"github.com/pkg/errors"

	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
)

// OpenVaultAccounts opens the custody, owner and treasury token accounts of
// the vault of mint in the reference token layer. Existing accounts are kept.
func (ledger *Ledger) OpenVaultAccounts(mint types.PublicKey) error {
	return ledger.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		vault := view.GetVault(mint)
		if vault == nil {
			return errors.Errorf("no vault for mint %v", mint)
		}
		for _, wallet := range []types.PublicKey{vault.VaultAddress, vault.OwnerWallet, vault.Treasury} {
			if _, err := tokens.OpenAccount(wallet, mint); err != nil {
				return errors.Wrapf(err, "failed to open token account of %v", wallet)
			}
		}
		if vault.RewardTokenMint != types.NativeMint && tokens.GetMint(vault.RewardTokenMint) != nil {
			if _, err := tokens.OpenAccount(vault.VaultAddress, vault.RewardTokenMint); err != nil {
				return errors.Wrap(err, "failed to open reward custody account")
			}
		}
		logger.Infof("Opened token accounts of vault %v", vault.VaultAddress)
		return nil
	})
}
