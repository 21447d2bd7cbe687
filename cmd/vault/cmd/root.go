package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikotoken/vault/cmd/vault/cmd/keeper"
	"github.com/mikotoken/vault/cmd/vault/cmd/query"
	"github.com/mikotoken/vault/cmd/vault/cmd/token"
	"github.com/mikotoken/vault/cmd/vault/cmd/tx"
	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/common/util"
)

var cfgPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Taxed token vault",
	Long:  `Custody, fee harvesting and reward distribution of a taxed token.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", fmt.Sprintf("config path (default is %s)", getDefaultConfigPath()))
	viper.BindPFlag(common.CfgConfigPath, RootCmd.PersistentFlags().Lookup("config"))

	// Support for custom db path
	RootCmd.PersistentFlags().String("data", "", "data path (default to config path)")
	viper.BindPFlag(common.CfgDataPath, RootCmd.PersistentFlags().Lookup("data"))

	RootCmd.PersistentFlags().String("backend", "", "storage backend: memory, leveldb or badger")
	viper.BindPFlag(common.CfgStorageBackend, RootCmd.PersistentFlags().Lookup("backend"))

	RootCmd.PersistentFlags().String("signer", "", "address calls are signed as")
	viper.BindPFlag(common.CfgSigner, RootCmd.PersistentFlags().Lookup("signer"))

	RootCmd.PersistentFlags().String("mint", "", "taxed token mint of the vault")
	viper.BindPFlag(common.CfgVaultTokenMint, RootCmd.PersistentFlags().Lookup("mint"))

	RootCmd.AddCommand(tx.TxCmd)
	RootCmd.AddCommand(query.QueryCmd)
	RootCmd.AddCommand(token.TokenCmd)
	RootCmd.AddCommand(keeper.KeeperCmd)
}

// initConfig is called when cmd.Execute() is called. reads in config file and ENV variables if set.
func initConfig() {
	// Search config (without extension).
	viper.SetConfigName("config")

	viper.SetEnvPrefix("VAULT")
	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgPath = viper.GetString(common.CfgConfigPath)
	if cfgPath == "" {
		cfgPath = getDefaultConfigPath()
		viper.Set(common.CfgConfigPath, cfgPath)
	}

	viper.AddConfigPath(cfgPath)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	util.InitLog()
}

// getDefaultConfigPath returns the default config path.
func getDefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return path.Join(home, ".vault")
}
