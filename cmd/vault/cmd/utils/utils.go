package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/ledger"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/metrics"
	"github.com/mikotoken/vault/store/database"
	"github.com/mikotoken/vault/store/database/backend"
)

// Error prints the message and exits with status 1.
func Error(msg string, args ...interface{}) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}

// DataPath returns the directory the database lives in.
func DataPath() string {
	if p := viper.GetString(common.CfgDataPath); p != "" {
		return p
	}
	return path.Join(viper.GetString(common.CfgConfigPath), "db")
}

// OpenDatabase opens the configured storage backend.
func OpenDatabase() database.Database {
	db, err := backend.NewDatabase(
		viper.GetString(common.CfgStorageBackend),
		DataPath(),
		viper.GetInt(common.CfgStorageCacheSize),
		viper.GetInt(common.CfgStorageHandles),
	)
	if err != nil {
		Error("Failed to open the database at %v: %v", DataPath(), err)
	}
	return db
}

// ProgramID returns the configured vault program ID.
func ProgramID() types.PublicKey {
	s := viper.GetString(common.CfgVaultProgramID)
	if s == "" {
		return types.DefaultProgramID
	}
	return ParseAddress("program ID", s)
}

// OpenLedger opens the database and the ledger on top of it. The caller
// closes the returned database.
func OpenLedger() (*ledger.Ledger, database.Database) {
	db := OpenDatabase()
	l := ledger.NewLedger(db, clockwork.NewRealClock(), ProgramID(), viper.GetUint64(common.CfgVaultMaxFee))
	if viper.GetBool(common.CfgMetricsEnabled) {
		l.SetMetrics(metrics.Default())
	}
	return l, db
}

// Mint returns the configured taxed token mint.
func Mint() types.PublicKey {
	s := viper.GetString(common.CfgVaultTokenMint)
	if s == "" {
		Error("The mint cannot be empty, set --mint or %v", common.CfgVaultTokenMint)
	}
	return ParseAddress("mint", s)
}

// Signer returns the configured signer.
func Signer() types.PublicKey {
	s := viper.GetString(common.CfgSigner)
	if s == "" {
		Error("The signer cannot be empty, set --signer")
	}
	return ParseAddress("signer", s)
}

// KeeperSigner returns the configured keeper key unless --signer is given.
func KeeperSigner() types.PublicKey {
	if s := viper.GetString(common.CfgKeeperKey); s != "" && viper.GetString(common.CfgSigner) == "" {
		return ParseAddress("keeper key", s)
	}
	return Signer()
}

// ParseAddress decodes a base58 address or exits.
func ParseAddress(name, s string) types.PublicKey {
	addr, err := types.ParseAddress(s)
	if err != nil {
		Error("Invalid %v: %v", name, err)
	}
	return addr
}

// ParseAddresses decodes a list of base58 addresses or exits.
func ParseAddresses(name string, values []string) []types.PublicKey {
	out := make([]types.PublicKey, 0, len(values))
	for _, v := range values {
		out = append(out, ParseAddress(name, v))
	}
	return out
}

// OptionalAddress returns the address of flag when it was set on cmd.
func OptionalAddress(cmd *cobra.Command, flag, value string) *types.PublicKey {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return types.AddressPtr(ParseAddress(flag, value))
}

// OptionalUint64 returns the value of flag when it was set on cmd.
func OptionalUint64(cmd *cobra.Command, flag string, value uint64) *uint64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return types.Uint64Ptr(value)
}

// PrintJSON prints v as indented JSON.
func PrintJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Error("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}

// ExecuteTx runs tx and prints the result. A rejected call exits with status 1.
func ExecuteTx(l *ledger.Ledger, tx types.Tx) {
	res := l.Execute(tx)
	PrintResult(types.TxName(tx), res)
}

// PrintResult prints res and exits with status 1 if it is an error.
func PrintResult(name string, res result.Result) {
	if res.IsError() {
		Error("%v rejected: %v", name, res.Error())
	}
	if res.Message != "" {
		fmt.Printf("%v: OK, %v\n", name, res.Message)
	} else {
		fmt.Printf("%v: OK\n", name)
	}
	for _, line := range res.Log {
		fmt.Printf("  %v\n", line)
	}
}
