package state

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/store"
	"github.com/mikotoken/vault/store/database"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "state"})

//
// ------------------------- StoreView -------------------------
//

type write struct {
	value   []byte
	deleted bool
}

// StoreView is a copy-on-write key/value overlay. A root view reads through
// to the database, a child view created by Copy reads through to its parent.
// Writes stay in the view until merged into the parent or saved.
type StoreView struct {
	parent *StoreView
	db     database.Database
	writes map[string]write
}

// NewStoreView creates a root StoreView over db
func NewStoreView(db database.Database) *StoreView {
	return &StoreView{
		db:     db,
		writes: make(map[string]write),
	}
}

// Copy returns a child view. Writes to the child are invisible to sv until
// sv.Merge(child).
func (sv *StoreView) Copy() *StoreView {
	return &StoreView{
		parent: sv,
		writes: make(map[string]write),
	}
}

// Merge applies the writes of a child view created by sv.Copy()
func (sv *StoreView) Merge(child *StoreView) error {
	if child.parent != sv {
		return errors.New("cannot merge a view that was not copied from this view")
	}
	for key, w := range child.writes {
		sv.writes[key] = w
	}
	child.writes = make(map[string]write)
	return nil
}

// Save flushes the writes of a root view to the database in one batch
func (sv *StoreView) Save() error {
	if sv.parent != nil {
		return errors.New("only a root view can be saved")
	}
	if len(sv.writes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(sv.writes))
	for key := range sv.writes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	batch := sv.db.NewBatch()
	for _, key := range keys {
		w := sv.writes[key]
		var err error
		if w.deleted {
			err = batch.Delete([]byte(key))
		} else {
			err = batch.Put([]byte(key), w.value)
		}
		if err != nil {
			return errors.Wrap(err, "failed to stage write")
		}
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "failed to save the StoreView")
	}
	logger.Debugf("Saved %v keys", len(keys))
	sv.writes = make(map[string]write)
	return nil
}

// Dirty reports whether the view holds unsaved writes
func (sv *StoreView) Dirty() bool {
	return len(sv.writes) > 0
}

// Get returns the value corresponding the key, nil if absent
func (sv *StoreView) Get(key []byte) []byte {
	if w, ok := sv.writes[string(key)]; ok {
		if w.deleted {
			return nil
		}
		return common.CopyBytes(w.value)
	}
	if sv.parent != nil {
		return sv.parent.Get(key)
	}
	value, err := sv.db.Get(key)
	if err == store.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to read key %X: %v", key, err))
	}
	return value
}

// Set sets the value of the key
func (sv *StoreView) Set(key []byte, value []byte) {
	sv.writes[string(key)] = write{value: common.CopyBytes(value)}
}

// Delete removes the key
func (sv *StoreView) Delete(key []byte) {
	sv.writes[string(key)] = write{deleted: true}
}

func (sv *StoreView) getRecord(key []byte, record interface{}) bool {
	data := sv.Get(key)
	if len(data) == 0 {
		return false
	}
	if err := types.FromBytes(data, record); err != nil {
		panic(fmt.Sprintf("Error reading record %X error: %v", key, err.Error()))
	}
	return true
}

func (sv *StoreView) setRecord(key []byte, record interface{}) {
	raw, err := types.ToBytes(record)
	if err != nil {
		panic(fmt.Sprintf("Error writing record %v error: %v", record, err.Error()))
	}
	sv.Set(key, raw)
}

// GetVault returns the vault record of mint, nil if not initialized
func (sv *StoreView) GetVault(mint types.PublicKey) *types.VaultState {
	vault := &types.VaultState{}
	if !sv.getRecord(VaultKey(mint), vault) {
		return nil
	}
	return vault
}

// SetVault stores the vault record of mint
func (sv *StoreView) SetVault(mint types.PublicKey, vault *types.VaultState) {
	sv.setRecord(VaultKey(mint), vault)
}

// GetPoolRegistry returns the pool registry of a vault, nil if never updated
func (sv *StoreView) GetPoolRegistry(vault types.PublicKey) *types.PoolRegistry {
	registry := &types.PoolRegistry{}
	if !sv.getRecord(PoolRegistryKey(vault), registry) {
		return nil
	}
	return registry
}

// SetPoolRegistry stores the pool registry of a vault
func (sv *StoreView) SetPoolRegistry(vault types.PublicKey, registry *types.PoolRegistry) {
	sv.setRecord(PoolRegistryKey(vault), registry)
}

// GetDialState returns the reward token scheduler of mint, nil if not initialized
func (sv *StoreView) GetDialState(mint types.PublicKey) *types.DialState {
	dial := &types.DialState{}
	if !sv.getRecord(DialStateKey(mint), dial) {
		return nil
	}
	return dial
}

// SetDialState stores the reward token scheduler of mint
func (sv *StoreView) SetDialState(mint types.PublicKey, dial *types.DialState) {
	sv.setRecord(DialStateKey(mint), dial)
}

// GetTokenMint returns a mint of the reference token ledger
func (sv *StoreView) GetTokenMint(mint types.PublicKey) *types.TokenMint {
	m := &types.TokenMint{}
	if !sv.getRecord(TokenMintKey(mint), m) {
		return nil
	}
	return m
}

// SetTokenMint stores a mint of the reference token ledger
func (sv *StoreView) SetTokenMint(mint *types.TokenMint) {
	sv.setRecord(TokenMintKey(mint.Address), mint)
}

// GetTokenAccount returns a token account
func (sv *StoreView) GetTokenAccount(account types.PublicKey) *types.TokenAccount {
	acc := &types.TokenAccount{}
	if !sv.getRecord(TokenAccountKey(account), acc) {
		return nil
	}
	return acc
}

// SetTokenAccount stores a token account
func (sv *StoreView) SetTokenAccount(acc *types.TokenAccount) {
	sv.setRecord(TokenAccountKey(acc.Address), acc)
}

// GetNativeAccount returns the native balance record of addr, a zero record when absent
func (sv *StoreView) GetNativeAccount(addr types.PublicKey) *types.NativeAccount {
	acc := &types.NativeAccount{}
	if !sv.getRecord(NativeAccountKey(addr), acc) {
		acc.Address = addr
	}
	return acc
}

// SetNativeAccount stores a native balance record
func (sv *StoreView) SetNativeAccount(acc *types.NativeAccount) {
	sv.setRecord(NativeAccountKey(acc.Address), acc)
}
