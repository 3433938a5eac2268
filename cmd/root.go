// =============================================================================
// TXT to XLSX Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (txtxl)
//   ├── processCmd (txtxl process)
//   └── versionCmd (txtxl version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Initializing the structured logger
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// logger is the shared structured logger, initialized before any command runs.
var logger *zap.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
// This is the entry point for the CLI application.
var rootCmd = &cobra.Command{
	Use: "txtxl",

	Short: "TXT to XLSX Converter - Split delimited exports by instruction code into Excel workbooks",

	Long: `TXT to XLSX Converter is a CLI tool that partitions a large delimited text
export by its Instruction Code column and materializes each group as one or
more Excel workbooks bounded by a maximum row count.

Pipeline:
  1. Split  - group the input's data lines by the key column and write one
              text artifact per instruction code into an intermediate folder
  2. Convert - parse each artifact, split it into row-budgeted batches, and
              write one single-sheet workbook per batch

Example Usage:
  txtxl process export.txt                 # Default '~' delimiter, 1048576 row budget
  txtxl process export.txt -d "|" -m 50000 # Pipe delimiter, 50000 rows per workbook
  txtxl process export.txt -o ./workbooks  # Custom output directory`,

	// Initialize the logger before any subcommand runs; flags are parsed by
	// this point, so --verbose is honored.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Execute the root command. If there's an error, print it and exit.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// LOGGER INITIALIZATION
// =============================================================================

// initLogger builds the shared zap logger. Verbose mode lowers the level to
// debug and switches to the development encoder for readable output.
func initLogger() error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	// Progress output goes to stdout via fmt; keep log output on stderr.
	cfg.OutputPaths = []string{"stderr"}

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger = built
	return nil
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init is called automatically when the package is loaded.
// It sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// Default is "config.yaml" in the current directory; the default file is
	// optional and built-in defaults apply when it is absent.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
