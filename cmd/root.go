// =============================================================================
// Seasonal Augmenter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// is attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (augmenter)          runs the augment pipeline with defaults
//   ├── augmentCmd  (augmenter augment)
//   ├── insightsCmd (augmenter insights)
//   ├── validateCmd (augmenter validate)
//   └── versionCmd  (augmenter version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose). Each
//   command loads the configuration and builds its logger through setup.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seasonal-augmenter/internal/config"
	"github.com/ginjaninja78/seasonal-augmenter/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "augmenter",
	Short: "Seasonal Augmenter - plant seasonal buying patterns in a Tesco purchase dataset",
	Long: `Seasonal Augmenter rewrites a synthetic Tesco purchase history so that it
shows recognisable seasonal patterns:

  - Strawberries, mostly in June to August
  - Wine added to a tenth of existing baskets, in any month
  - Twenty synthesized December shops, each with wine

The data file is rewritten in place; a backup is taken first.

Example Usage:
  augmenter                           # Augment ./data/synthetic_tesco_data.json
  augmenter augment --seed 42         # Reproducible run
  augmenter augment --dry-run         # Run the steps without saving
  augmenter insights --xlsx out.xlsx  # Year-in-review summary
  augmenter validate                  # Check the data file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	// With no subcommand the augment pipeline runs with defaults.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAugment(cmd, augmentOptions{})
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	// The file is optional; without it every setting takes its default.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// setup loads the configuration and builds the logger for a command.
// Logs go to the command's stderr so stdout carries only the command output.
func setup(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("configuration loaded", "config", cfgFile, "data_file", cfg.DataFile)

	return cfg, logger, nil
}
