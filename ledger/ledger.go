package ledger

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger/dial"
	exec "github.com/mikotoken/vault/ledger/execution"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/metrics"
	"github.com/mikotoken/vault/store/database"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "ledger"})

// TokenLedgerFactory binds a token layer to the scratch view of one call.
type TokenLedgerFactory func(view *st.StoreView, now time.Time) types.TokenLedger

// ReferenceTokenLedger binds the reference token layer.
func ReferenceTokenLedger(view *st.StoreView, now time.Time) types.TokenLedger {
	return token.NewLedger(view, now)
}

// Ledger serializes calls against the vault records. Every call runs on its
// own scratch view and is committed only when accepted.
type Ledger struct {
	mu sync.Mutex

	state    *st.LedgerState
	executor *exec.Executor
	clock    clockwork.Clock
	tokens   TokenLedgerFactory
	metrics  *metrics.VaultMetrics
}

// NewLedger creates a ledger over db
func NewLedger(db database.Database, clock clockwork.Clock, programID types.PublicKey, maxFee uint64) *Ledger {
	return &Ledger{
		state:    st.NewLedgerState(db),
		executor: exec.NewExecutor(programID, maxFee),
		clock:    clock,
		tokens:   ReferenceTokenLedger,
	}
}

// SetTokenLedgerFactory replaces the token layer calls run against
func (ledger *Ledger) SetTokenLedgerFactory(factory TokenLedgerFactory) {
	ledger.tokens = factory
}

// SetMetrics sets the metrics accepted and rejected calls are counted in
func (ledger *Ledger) SetMetrics(m *metrics.VaultMetrics) {
	ledger.metrics = m
}

// GetState returns the state of the ledger
func (ledger *Ledger) GetState() *st.LedgerState {
	return ledger.state
}

// Clock returns the clock calls observe
func (ledger *Ledger) Clock() clockwork.Clock {
	return ledger.clock
}

// ProgramID returns the program custody addresses are derived from
func (ledger *Ledger) ProgramID() types.PublicKey {
	return ledger.executor.ProgramID()
}

// Execute runs one call atomically. A rejected call leaves no state change.
func (ledger *Ledger) Execute(tx types.Tx) result.Result {
	if tx == nil {
		return result.ErrUnknownTx
	}

	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	now := ledger.clock.Now()
	scratch := ledger.state.Checkout()
	ctx := &exec.CallContext{
		Now:          now,
		Tokens:       ledger.tokens(scratch, now),
		RewardSource: dial.NewSource(scratch, tx.GetMint()),
	}

	before := ledger.state.Delivered().GetVault(tx.GetMint())
	res := ledger.executor.ExecuteTx(ctx, scratch, tx)
	if res.IsOK() {
		if err := ledger.state.Commit(scratch); err != nil {
			logger.Errorf("Failed to commit %v: %v", types.TxName(tx), err)
			res = result.Error("failed to commit: %v", err)
		}
	}

	ledger.metrics.ObserveTx(types.TxName(tx), res.Code.String())
	if res.IsOK() {
		ledger.observeStats(before, ledger.state.Delivered().GetVault(tx.GetMint()))
	}
	return res
}

func (ledger *Ledger) observeStats(before, after *types.VaultState) {
	if before == nil || after == nil {
		return
	}
	ledger.metrics.ObserveStats(
		after.TokenMint.String(),
		after.RewardTokenMint.String(),
		after.TotalFeesHarvested-before.TotalFeesHarvested,
		after.TotalRewardsDistributed-before.TotalRewardsDistributed,
		after.UniqueRewardRecipients-before.UniqueRewardRecipients,
	)
}

// Query runs fn against the committed state. fn must not write.
func (ledger *Ledger) Query(fn func(view *st.StoreView, tokens *token.Ledger)) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	view := ledger.state.Checkout()
	fn(view, token.NewLedger(view, ledger.clock.Now()))
}

// Update runs fn on a scratch view with the reference token layer and commits
// the writes when fn returns nil. It serves setup and simulation, not vault calls.
func (ledger *Ledger) Update(fn func(view *st.StoreView, tokens *token.Ledger) error) error {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	scratch := ledger.state.Checkout()
	if err := fn(scratch, token.NewLedger(scratch, ledger.clock.Now())); err != nil {
		return err
	}
	return ledger.state.Commit(scratch)
}

// GetVault returns the vault record of mint, nil if not initialized
func (ledger *Ledger) GetVault(mint types.PublicKey) *types.VaultState {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	return ledger.state.Delivered().GetVault(mint)
}

// GetPoolRegistry returns the pool registry of the vault of mint
func (ledger *Ledger) GetPoolRegistry(mint types.PublicKey) *types.PoolRegistry {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	vault := ledger.state.Delivered().GetVault(mint)
	if vault == nil {
		return nil
	}
	return ledger.state.Delivered().GetPoolRegistry(vault.VaultAddress)
}

// GetDialState returns the reward token scheduler of mint
func (ledger *Ledger) GetDialState(mint types.PublicKey) *types.DialState {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	return ledger.state.Delivered().GetDialState(mint)
}
