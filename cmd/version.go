// =============================================================================
// TXT to XLSX Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command, which reports the build metadata
// stamped into the binary. Release builds inject the values below with
// ldflags; a plain `go build` from source reports a "dev" binary.
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, stamped at release time:
//
//	go build -ldflags "\
//	  -X 'github.com/ginjaninja78/TXT-to-XLSX-conversion/cmd.Version=1.2.0' \
//	  -X 'github.com/ginjaninja78/TXT-to-XLSX-conversion/cmd.Commit=abc1234' \
//	  -X 'github.com/ginjaninja78/TXT-to-XLSX-conversion/cmd.BuildDate=2026-08-31'"
var (
	// Version is the release version of the converter.
	Version = "dev"

	// Commit is the short hash of the commit the binary was built from.
	Commit = "unknown"

	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the converter version, the commit and date it was built from, and the Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("txtxl %s (commit %s, built %s, %s)\n",
			Version, Commit, BuildDate, runtime.Version())
	},
}

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
