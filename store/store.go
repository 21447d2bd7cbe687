package store

// Store is the interface for key/value storages holding encoded records.
type Store interface {
	Put(key []byte, value interface{}) error
	Delete(key []byte) error
	Get(key []byte, value interface{}) error
}
