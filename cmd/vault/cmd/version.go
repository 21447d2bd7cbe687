package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version and GitHash are set at build time with -ldflags.
var (
	Version = "dev"
	GitHash = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version of current vault binary.",
	Run:   runVersion,
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("Version %s\nGit hash %s\n", Version, GitHash)
}
