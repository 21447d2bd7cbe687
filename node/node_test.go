package node

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/rpc"
	"github.com/mikotoken/vault/store/database/backend"
)

func TestNodeLifecycle(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	db := backend.NewMemDatabase()
	clock := clockwork.NewFakeClock()
	l := ledger.NewLedger(db, clock, types.DefaultProgramID, math.MaxUint64)

	n := NewNode(&Params{
		DB:            db,
		Ledger:        l,
		KeeperEnabled: true,
		KeeperSigner:  types.MakeAddress("keeper"),
		Mint:          types.MakeAddress("mint"),
		KeeperConfig:  keeper.DefaultConfig(),
		RPCEnabled:    true,
		RPCConfig:     rpc.Config{Address: "127.0.0.1", Port: "0", Timeout: time.Second},
	})
	require.NotNil(n.Keeper)
	require.NotNil(n.RPC)

	n.Start(context.Background())
	n.Stop()

	done := make(chan struct{})
	go func() {
		n.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("node did not stop")
	}

	report, err := n.Reports.Last(keeper.TaskHarvest)
	assert.Nil(err)
	assert.Nil(report)
}

func TestNodeDisabledServices(t *testing.T) {
	db := backend.NewMemDatabase()
	l := ledger.NewLedger(db, clockwork.NewFakeClock(), types.DefaultProgramID, math.MaxUint64)

	n := NewNode(&Params{DB: db, Ledger: l})
	assert.Nil(t, n.Keeper)
	assert.Nil(t, n.RPC)

	n.Start(context.Background())
	n.Stop()
	n.Wait()
}
