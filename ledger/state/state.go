package state

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/mikotoken/vault/store/database"
)

//
// ------------------------- Ledger State -------------------------
//

// LedgerState owns the committed view of the vault ledger. Every call runs
// on a scratch view from Checkout and takes effect only through Commit.
type LedgerState struct {
	mu        sync.Mutex
	db        database.Database
	delivered *StoreView
}

// NewLedgerState creates a new instance of LedgerState over db
func NewLedgerState(db database.Database) *LedgerState {
	return &LedgerState{
		db:        db,
		delivered: NewStoreView(db),
	}
}

// Delivered returns the committed view. Callers must not write to it.
func (s *LedgerState) Delivered() *StoreView {
	return s.delivered
}

// Checkout returns a scratch view for one call. Dropping the view discards
// everything the call wrote.
func (s *LedgerState) Checkout() *StoreView {
	return s.delivered.Copy()
}

// Commit merges a scratch view into the committed view and persists it
func (s *LedgerState) Commit(scratch *StoreView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A failed save leaves the committed view as it was before the merge.
	pending := make(map[string]write, len(s.delivered.writes))
	for key, w := range s.delivered.writes {
		pending[key] = w
	}
	if err := s.delivered.Merge(scratch); err != nil {
		return err
	}
	if err := s.delivered.Save(); err != nil {
		s.delivered.writes = pending
		return errors.Wrap(err, "failed to commit ledger state")
	}
	return nil
}
