// =============================================================================
// TXT to XLSX Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the pipeline, including:
//   - Directory management
//   - Intermediate artifact discovery
//   - Run summary log generation
//
// Every processing run is tagged with a random run identifier so that summary
// logs from repeated runs over the same input never collide and can be
// correlated with any external job records.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates all given directories if they don't exist.
//
// RETURNS:
//   - An error if any directory cannot be created.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// RemoveDirectory deletes a directory and its contents. Used when the caller
// opts in to cleaning up the intermediate artifacts after a successful run.
func RemoveDirectory(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// ARTIFACT DISCOVERY
// =============================================================================

// DiscoverArtifacts returns the intermediate text artifacts in a directory,
// sorted by name for deterministic enumeration.
//
// PARAMETERS:
//   - dir: The intermediate directory.
//
// RETURNS:
//   - The paths of all *.txt files in the directory.
//   - An error if the directory cannot be read.
func DiscoverArtifacts(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// =============================================================================
// RUN SUMMARY LOG
// =============================================================================

// RunSummary contains summary information about a processing run.
type RunSummary struct {
	// RunID is a random identifier for this run.
	RunID uuid.UUID

	// InputFile is the file that was split and converted.
	InputFile string

	StartTime time.Time
	EndTime   time.Time

	// SplitDuration is the elapsed time of the splitting stage.
	SplitDuration time.Duration

	// ConvertDuration is the elapsed time of the conversion stage.
	ConvertDuration time.Duration

	// GroupCount is the number of distinct instruction codes found.
	GroupCount int

	// Results holds the per-artifact conversion outcomes, in artifact order.
	Results []types.Result
}

// NewRunSummary starts a summary for a run over the given input file.
func NewRunSummary(inputFile string) *RunSummary {
	return &RunSummary{
		RunID:     uuid.New(),
		InputFile: inputFile,
		StartTime: time.Now(),
	}
}

// WorkbookCount returns the total number of workbooks created in this run.
func (s *RunSummary) WorkbookCount() int {
	count := 0
	for _, r := range s.Results {
		count += len(r.OutputFiles)
	}
	return count
}

// FailureCount returns the number of artifacts that failed to convert.
func (s *RunSummary) FailureCount() int {
	count := 0
	for _, r := range s.Results {
		if !r.Success {
			count++
		}
	}
	return count
}

// WriteSummaryLog writes the run summary to a log file in outputDir.
//
// RETURNS:
//   - The path to the summary file, named after the run identifier.
//   - An error if writing fails.
func WriteSummaryLog(summary *RunSummary, outputDir string) (string, error) {
	summaryFileName := fmt.Sprintf("run_summary_%s.txt", summary.RunID)
	summaryPath := filepath.Join(outputDir, summaryFileName)

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	header := fmt.Sprintf("TXT to XLSX Converter - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:       %s\n"+
		"  Input File:   %s\n"+
		"  Start Time:   %s\n"+
		"  End Time:     %s\n"+
		"  Duration:     %s\n"+
		"  Split Time:   %s\n"+
		"  Convert Time: %s\n\n"+
		"Statistics:\n"+
		"  Instruction Codes: %d\n"+
		"  Workbooks Created: %d\n"+
		"  Failed Artifacts:  %d\n\n",
		summary.RunID,
		summary.InputFile,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.SplitDuration.String(),
		summary.ConvertDuration.String(),
		summary.GroupCount,
		summary.WorkbookCount(),
		summary.FailureCount())
	writer.WriteString(header)

	writer.WriteString("Artifacts:\n")
	writer.WriteString("--------------------------------------------------------------------------------\n")
	for _, r := range summary.Results {
		if r.Success {
			writer.WriteString(fmt.Sprintf("  OK     %s (%d row(s))\n", filepath.Base(r.ArtifactPath), r.RowCount))
			for _, out := range r.OutputFiles {
				writer.WriteString(fmt.Sprintf("           -> %s\n", out))
			}
		} else {
			writer.WriteString(fmt.Sprintf("  FAILED %s\n", filepath.Base(r.ArtifactPath)))
			writer.WriteString(fmt.Sprintf("           %v\n", r.Error))
		}
	}

	footer := "================================================================================\n" +
		"End of Summary\n"
	writer.WriteString(footer)

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks whether a path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
