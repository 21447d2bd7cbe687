package keeper

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/ledger/types"
)

// SnapshotFile is the JSON form of a holder snapshot.
//
//	{
//	  "holders": [
//	    {"wallet": "<base58>", "balance": "1000000", "usdValue": "250"}
//	  ],
//	  "accounts": ["<base58 token account>"]
//	}
//
// Accounts lists the token accounts to harvest. When omitted the associated
// token accounts of the holders are used.
type SnapshotFile struct {
	Holders  []SnapshotHolder `json:"holders"`
	Accounts []string         `json:"accounts,omitempty"`
}

// SnapshotHolder is one holder of a SnapshotFile.
type SnapshotHolder struct {
	Wallet       string             `json:"wallet"`
	TokenAccount string             `json:"tokenAccount,omitempty"`
	Balance      common.JSONUint64  `json:"balance"`
	USDValue     *common.JSONUint64 `json:"usdValue,omitempty"`
}

// Snapshot is a decoded holder snapshot.
type Snapshot struct {
	Holders  []types.HolderSnapshotEntry
	Accounts []types.PublicKey
}

// ParseSnapshot decodes a JSON holder snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var file SnapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}

	snapshot := &Snapshot{
		Holders:  make([]types.HolderSnapshotEntry, 0, len(file.Holders)),
		Accounts: make([]types.PublicKey, 0, len(file.Accounts)),
	}
	for i, h := range file.Holders {
		wallet, err := types.ParseAddress(h.Wallet)
		if err != nil {
			return nil, errors.Wrapf(err, "holder %v", i)
		}
		entry := types.HolderSnapshotEntry{
			Wallet:  wallet,
			Balance: uint64(h.Balance),
		}
		if h.TokenAccount != "" {
			if entry.TokenAccount, err = types.ParseAddress(h.TokenAccount); err != nil {
				return nil, errors.Wrapf(err, "holder %v", i)
			}
		}
		if h.USDValue != nil {
			entry.USDValue = types.Uint64Ptr(uint64(*h.USDValue))
		}
		snapshot.Holders = append(snapshot.Holders, entry)
	}
	for i, a := range file.Accounts {
		account, err := types.ParseAddress(a)
		if err != nil {
			return nil, errors.Wrapf(err, "account %v", i)
		}
		snapshot.Accounts = append(snapshot.Accounts, account)
	}
	return snapshot, nil
}

// LoadSnapshot reads a JSON holder snapshot from path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot %v", path)
	}
	return ParseSnapshot(data)
}

// HarvestAccounts returns the token accounts of mint to harvest.
func (s *Snapshot) HarvestAccounts(mint types.PublicKey) []types.PublicKey {
	if len(s.Accounts) > 0 {
		return s.Accounts
	}
	accounts := make([]types.PublicKey, 0, len(s.Holders))
	for _, h := range s.Holders {
		account, err := types.AssociatedTokenAddress(h.Wallet, mint)
		if err != nil {
			logger.Warnf("Failed to derive token account of %v: %v", h.Wallet, err)
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts
}

// HolderSource supplies the snapshot a keeper round works on.
type HolderSource interface {
	Snapshot() (*Snapshot, error)
}

// FileSource reloads a JSON snapshot file on every round.
type FileSource struct {
	path string
}

var _ HolderSource = (*FileSource)(nil)

// NewFileSource creates a source reading the snapshot at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Snapshot() (*Snapshot, error) {
	return LoadSnapshot(s.path)
}
