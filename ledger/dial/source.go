package dial

import (
	"github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var _ types.RewardTokenSource = (*Source)(nil)

// Source reads the current reward token of a mint from the scheduler record.
// Without a scheduler record it reports the zero address and the vault keeps
// its configured reward token.
type Source struct {
	view *state.StoreView
	mint types.PublicKey
}

// NewSource creates a reward token source for mint over view
func NewSource(view *state.StoreView, mint types.PublicKey) *Source {
	return &Source{
		view: view,
		mint: mint,
	}
}

func (s *Source) CurrentRewardToken() (types.PublicKey, error) {
	d := s.view.GetDialState(s.mint)
	if d == nil {
		return types.ZeroAddress, nil
	}
	return d.CurrentRewardToken, nil
}
