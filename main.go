// =============================================================================
// TXT to XLSX Converter - Main Entry Point
// =============================================================================
//
// Entry point for the txtxl CLI. All command definitions live in cmd/ (Cobra),
// the pipeline stages in internal/, and shared file utilities in pkg/; main
// only hands control to the command tree.
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/cmd"
)

func main() {
	cmd.Execute()
}
