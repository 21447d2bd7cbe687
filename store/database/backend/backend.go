package backend

import (
	"github.com/pkg/errors"

	"github.com/mikotoken/vault/store/database"
)

const (
	BackendMemory  = "memory"
	BackendLevelDB = "leveldb"
	BackendBadger  = "badger"
)

// NewDatabase opens the named backend at path. cache and handles only apply
// to leveldb.
func NewDatabase(backendName, path string, cache, handles int) (database.Database, error) {
	switch backendName {
	case BackendMemory:
		return NewMemDatabase(), nil
	case BackendLevelDB, "":
		return NewLDBDatabase(path, cache, handles)
	case BackendBadger:
		return NewBadgerDatabase(path)
	default:
		return nil, errors.Errorf("unknown storage backend %q", backendName)
	}
}
