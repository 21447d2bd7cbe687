package common

import (
	"math"
	"time"

	"github.com/spf13/viper"
)

const (
	// CfgConfigPath defines custom config path
	CfgConfigPath = "config.path"

	// CfgDataPath defines data directory.
	CfgDataPath = "data.path"

	// CfgSigner sets the address calls are signed as.
	CfgSigner = "signer"

	// CfgStorageBackend selects the key/value backend: memory, leveldb or badger.
	CfgStorageBackend = "storage.backend"
	// CfgStorageCacheSize sets the block cache size (MB) of the leveldb backend.
	CfgStorageCacheSize = "storage.cacheSize"
	// CfgStorageHandles sets the number of open file handles of the leveldb backend.
	CfgStorageHandles = "storage.handles"

	// CfgVaultProgramID sets the program ID the vault address is derived from.
	CfgVaultProgramID = "vault.programID"
	// CfgVaultTokenDecimals sets the decimals of the taxed token mint.
	CfgVaultTokenDecimals = "vault.tokenDecimals"
	// CfgVaultTokenMint sets the taxed token mint address.
	CfgVaultTokenMint = "vault.tokenMint"
	// CfgVaultMaxFee sets the upper bound of a single transfer fee, in base units.
	CfgVaultMaxFee = "vault.maxFee"

	// CfgKeeperKey sets the keeper signer address.
	CfgKeeperKey = "keeper.key"
	// CfgKeeperHarvestInterval sets the interval between harvest rounds.
	CfgKeeperHarvestInterval = "keeper.harvestInterval"
	// CfgKeeperDistributionInterval sets the interval between distribution rounds.
	CfgKeeperDistributionInterval = "keeper.distributionInterval"
	// CfgKeeperFeeUpdateInterval sets the interval between fee schedule pushes.
	CfgKeeperFeeUpdateInterval = "keeper.feeUpdateInterval"
	// CfgKeeperHarvestBatchSize sets the number of accounts per harvest call.
	CfgKeeperHarvestBatchSize = "keeper.harvestBatchSize"
	// CfgKeeperDistributionBatchSize sets the number of holders per distribution call.
	CfgKeeperDistributionBatchSize = "keeper.distributionBatchSize"

	// CfgKeeperEnabled sets whether the daemon runs the keeper.
	CfgKeeperEnabled = "keeper.enabled"
	// CfgKeeperSnapshot sets the holder snapshot file keeper rounds read.
	CfgKeeperSnapshot = "keeper.snapshot"

	// CfgRPCEnabled sets whether the daemon serves JSON-RPC.
	CfgRPCEnabled = "rpc.enabled"
	// CfgRPCAddress sets the binding address of the RPC server.
	CfgRPCAddress = "rpc.address"
	// CfgRPCPort sets the port of the RPC server.
	CfgRPCPort = "rpc.port"
	// CfgRPCMaxConnections limits concurrent connections accepted by the RPC server.
	CfgRPCMaxConnections = "rpc.maxConnections"
	// CfgRPCTimeoutSecs sets the timeout of a RPC request in seconds.
	CfgRPCTimeoutSecs = "rpc.timeoutSecs"
	// CfgRPCEnableTx sets whether vault calls can be executed over RPC.
	CfgRPCEnableTx = "rpc.enableTx"

	// CfgMetricsEnabled sets whether to run the metrics endpoint.
	CfgMetricsEnabled = "metrics.enabled"
	// CfgMetricsAddr sets the listen address of the metrics endpoint.
	CfgMetricsAddr = "metrics.addr"

	// CfgLogLevels sets the log level.
	CfgLogLevels = "log.levels"
)

// InitialConfig is the default configuartion produced by init command.
const InitialConfig = `# Vault configuration
storage:
  backend: leveldb
keeper:
  enabled: false
  harvestInterval: 15m
  distributionInterval: 1h
rpc:
  enabled: true
  address: 127.0.0.1
  port: 16900
metrics:
  enabled: false
  addr: 127.0.0.1:9100
log:
  levels: "*:info"
`

func init() {
	viper.SetDefault(CfgStorageBackend, "leveldb")
	viper.SetDefault(CfgStorageCacheSize, 16)
	viper.SetDefault(CfgStorageHandles, 16)

	viper.SetDefault(CfgVaultTokenDecimals, 9)
	viper.SetDefault(CfgVaultMaxFee, uint64(math.MaxUint64))

	viper.SetDefault(CfgKeeperHarvestInterval, 15*time.Minute)
	viper.SetDefault(CfgKeeperDistributionInterval, time.Hour)
	viper.SetDefault(CfgKeeperFeeUpdateInterval, 30*time.Second)
	viper.SetDefault(CfgKeeperHarvestBatchSize, 20)
	viper.SetDefault(CfgKeeperDistributionBatchSize, 15)

	viper.SetDefault(CfgKeeperEnabled, false)

	viper.SetDefault(CfgRPCEnabled, false)
	viper.SetDefault(CfgRPCAddress, "127.0.0.1")
	viper.SetDefault(CfgRPCPort, "16900")
	viper.SetDefault(CfgRPCMaxConnections, 200)
	viper.SetDefault(CfgRPCTimeoutSecs, 60)
	viper.SetDefault(CfgRPCEnableTx, false)

	viper.SetDefault(CfgMetricsEnabled, false)
	viper.SetDefault(CfgMetricsAddr, "127.0.0.1:9100")

	viper.SetDefault(CfgLogLevels, "*:info")
}

// WriteInitialConfig writes initial config file to file system.
func WriteInitialConfig(filePath string) error {
	return WriteFileAtomic(filePath, []byte(InitialConfig), 0600)
}
