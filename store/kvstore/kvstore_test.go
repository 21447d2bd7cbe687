package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikotoken/vault/store"
	"github.com/mikotoken/vault/store/database/backend"
)

type roundRecord struct {
	Task      string
	Calls     uint64
	Succeeded bool
	Amounts   []uint64
}

func TestKVStore(t *testing.T) {
	assert := assert.New(t)

	kvstore := NewKVStore(backend.NewMemDatabase())
	key := []byte("keeper/harvest")

	err := kvstore.Put(key, roundRecord{Task: "harvest", Calls: 3, Succeeded: true, Amounts: []uint64{1, 2}})
	assert.Nil(err)

	var rec roundRecord
	err = kvstore.Get(key, &rec)
	assert.Nil(err)
	assert.Equal("harvest", rec.Task)
	assert.Equal(uint64(3), rec.Calls)
	assert.True(rec.Succeeded)
	assert.Equal([]uint64{1, 2}, rec.Amounts)

	assert.Nil(kvstore.Delete(key))
	err = kvstore.Get(key, &rec)
	assert.Equal(store.ErrKeyNotFound, err)
}
