package result

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResultConstructors(t *testing.T) {
	assert := assert.New(t)

	assert.True(OK.IsOK())
	assert.False(OK.IsError())

	res := Error("batch size %v exceeds %v", 21, 20)
	assert.True(res.IsError())
	assert.Equal(CodeGenericError, res.Code)
	assert.Equal("batch size 21 exceeds 20", res.Message)

	res = res.WithErrorCode(CodeInvalidBatchSize)
	assert.Equal(CodeInvalidBatchSize, res.Code)
	assert.Equal("InvalidBatchSize: batch size 21 exceeds 20", res.Error())

	info := OKWith("NoEligibleHolders")
	assert.True(info.IsOK())
	assert.Equal("NoEligibleHolders", info.Message)
}

func TestFromError(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromError(nil).IsOK())

	paused := ErrorWithCode(CodePaused, "vault is paused")
	assert.Equal(paused, FromError(paused))

	wrapped := FromError(errors.New("disk full"))
	assert.Equal(CodeGenericError, wrapped.Code)
	assert.Equal("disk full", wrapped.Message)
}

func TestErrorCodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("OK", CodeOK.String())
	assert.Equal("CannotRemoveSystemExclusion", CodeCannotRemoveSystemExclusion.String())
	assert.Equal("Unknown", ErrorCode(42).String())
}
