package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRegistryAdd(t *testing.T) {
	assert := assert.New(t)

	r := &PoolRegistry{Vault: MakeAddress("vault")}
	pool := MakeAddress("pool-0")
	assert.Equal(2, r.Add([]PublicKey{pool, MakeAddress("pool-1"), pool, ZeroAddress}))
	assert.True(r.Contains(pool))

	pools := []PublicKey{}
	for i := 0; i < 2*MaxPools; i++ {
		pools = append(pools, MakeAddress(fmt.Sprintf("pool-%v", i)))
	}
	assert.Equal(MaxPools-2, r.Add(pools))
	assert.Equal(MaxPools, len(r.Pools))
	assert.Equal(0, r.Add([]PublicKey{MakeAddress("late")}))

	var empty *PoolRegistry
	assert.False(empty.Contains(pool))
}

func TestDialHistoryCap(t *testing.T) {
	assert := assert.New(t)

	d := &DialState{}
	for i := 0; i < MaxRewardTokenHistory+5; i++ {
		d.Record(RewardTokenUpdate{Timestamp: uint64(i)})
	}
	assert.Equal(MaxRewardTokenHistory, len(d.History))
	assert.Equal(uint64(5), d.History[0].Timestamp)
	assert.Equal(uint64(MaxRewardTokenHistory+4), d.History[MaxRewardTokenHistory-1].Timestamp)
}
