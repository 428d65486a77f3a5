// Package cmd implements rtvctl's cobra command tree: every RTV operation
// plus export/import, sign/verify, and persistence (store/catalog),
// operating on named vectors held in a blob store.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullstride/rtvctl/internal/config"
)

var (
	// Global flags.
	configFile string
	debug      bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:     "rtvctl",
	Short:   "rtvctl - persistent radix-tree vector command line tool",
	Long:    `rtvctl loads, mutates, and persists named persistent radix-tree vectors against a configurable blob store and relational catalog.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "run the structural-invariant audit after every mutating command")
}

// initConfig loads rtvctl's configuration. Errors are fatal: every
// subcommand needs a valid config to do anything.
func initConfig() {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if debug {
		loaded.Debug.ValidateAfterEachOp = true
	}
	cfg = loaded
}
