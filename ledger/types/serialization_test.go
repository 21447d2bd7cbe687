package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultStateEncoding(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	v := TestVault()
	v.LaunchTimestamp = 1_750_000_000
	v.FeeFinalized = true
	v.CurrentFeeBps = FinalFeeBps
	v.Paused = true
	v.TotalFeesHarvested = 12345
	require.True(v.AddExclusion(MakeAddress("pool"), ExclusionFee, 99, v.Authority).IsOK())

	raw, err := ToBytes(v)
	require.Nil(err)

	decoded := &VaultState{}
	require.Nil(FromBytes(raw, decoded))
	assert.Equal(v, decoded)
}

func TestUnsupportedType(t *testing.T) {
	assert := assert.New(t)

	_, err := ToBytes("vault")
	assert.NotNil(err)
	assert.NotNil(FromBytes([]byte{0xc0}, new(string)))
	assert.NotNil(FromBytes([]byte{0x01}, &VaultState{}))
}
