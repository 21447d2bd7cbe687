package node

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/metrics"
	"github.com/mikotoken/vault/rpc"
	"github.com/mikotoken/vault/store"
	"github.com/mikotoken/vault/store/database"
	"github.com/mikotoken/vault/store/kvstore"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "node"})

// Node runs the long lived services of a vault: the keeper and the RPC server.
type Node struct {
	Store   store.Store
	Ledger  *ledger.Ledger
	Reports *keeper.ReportStore
	Keeper  *keeper.Keeper
	RPC     *rpc.VaultRPCServer

	// Life cycle
	ctx    context.Context
	cancel context.CancelFunc
}

type Params struct {
	DB     database.Database
	Ledger *ledger.Ledger

	// Keeper is started when KeeperEnabled is set.
	KeeperEnabled bool
	KeeperSigner  types.PublicKey
	Mint          types.PublicKey
	Source        keeper.HolderSource
	KeeperConfig  keeper.Config

	// RPC is started when RPCEnabled is set.
	RPCEnabled bool
	RPCConfig  rpc.Config

	Metrics *metrics.VaultMetrics
}

func NewNode(params *Params) *Node {
	store := kvstore.NewKVStore(params.DB)
	reports := keeper.NewReportStore(store)

	node := &Node{
		Store:   store,
		Ledger:  params.Ledger,
		Reports: reports,
	}

	if params.KeeperEnabled {
		node.Keeper = keeper.NewKeeper(params.Ledger, params.KeeperSigner, params.Mint, params.Source, reports, params.KeeperConfig)
		node.Keeper.SetMetrics(params.Metrics)
	}
	if params.RPCEnabled {
		node.RPC = rpc.NewVaultRPCServer(params.Ledger, reports, params.RPCConfig)
	}
	return node
}

// Start starts sub components and kick off the main loop.
func (n *Node) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	n.ctx = c
	n.cancel = cancel

	if n.Keeper != nil {
		n.Keeper.Start(n.ctx)
	}
	if n.RPC != nil {
		n.RPC.Start(n.ctx)
	}
	if n.Keeper == nil && n.RPC == nil {
		logger.Warn("Neither the keeper nor the RPC server is enabled")
	}
}

// Stop notifies all sub components to stop without blocking.
func (n *Node) Stop() {
	if n.cancel != nil {
		n.cancel()
	}
}

// Wait blocks until all sub components stop.
func (n *Node) Wait() {
	if n.Keeper != nil {
		n.Keeper.Wait()
	}
	if n.RPC != nil {
		n.RPC.Wait()
	}
}
