// Sparx is a bootstrap utility for k0s Kubernetes clusters.
//
// It manages an editable inventory of target machines, probes their
// reachability over DNS and SSH, and generates the k0sctl configuration
// used to bring the cluster up.
//
// Usage:
//
//	sparx [command] [flags]
//
// Running without arguments launches the interactive inventory wizard.
// See 'sparx --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zorlin/sparx/internal/logging"
	"github.com/Zorlin/sparx/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sparx",
	Short: "k0s Cluster Bootstrap Utility",
	Long: `A utility for bootstrapping k0s Kubernetes clusters.

Manages a host inventory with live reachability probing, assigns
controller and worker roles, and generates the k0sctl configuration
used to deploy the cluster over SSH.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sparx %s (commit: %s)\n", version.Version, version.Commit)
	},
}
