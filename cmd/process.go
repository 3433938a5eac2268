// =============================================================================
// TXT to XLSX Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full split-and-
// convert pipeline over a single input file.
//
// COMMAND USAGE:
//   txtxl process <input-file> [flags]
//
// FLAGS:
//   -d, --delimiter   : Field delimiter used in the input file (default "~")
//   -m, --max-rows    : Maximum data rows per Excel workbook (default 1048576)
//   -o, --output-dir  : Directory for the generated workbooks
//   -k, --key-column  : 0-based index of the grouping column (default 1)
//
// PROCESSING PIPELINE:
//   1. Load configuration and apply flag overrides
//   2. Split the input file by instruction code into the intermediate folder
//   3. For each intermediate artifact:
//      a. Parse it as a delimited table
//      b. Slice it into row-budgeted batches
//      c. Write one workbook per batch
//   4. Print the processing summary and write the run summary log
//
// EXIT STATUS:
//   Splitting-stage errors are fatal and exit non-zero: a malformed input
//   means no group can be trusted. Per-artifact conversion failures are
//   reported in the summary but do not change the successful exit status;
//   processing always continues with the remaining artifacts.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/config"
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/converter"
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/splitter"
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// delimiter is the field separator used in the input file.
var delimiter string

// maxRows is the maximum number of data rows per output workbook.
var maxRows int

// outputDir is the destination directory for generated workbooks.
var outputDir string

// keyColumn is the 0-based index of the grouping column.
var keyColumn int

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <input-file>",
	Short: "Split an input file by instruction code and convert each group to Excel",
	Long: `The process command splits a delimited text file into per-instruction-code
groups, writes each group to a text artifact in an "intermediate" folder
beside the input file, and then converts every artifact into one or more
Excel workbooks bounded by the configured row budget.

Groups larger than the row budget are split into consecutively numbered
workbooks (<code>_part1.xlsx, <code>_part2.xlsx, ...); groups within the
budget produce a single workbook (<code>.xlsx).

A conversion failure on one artifact is reported and processing continues
with the remaining artifacts; only a failure during the splitting stage
aborts the run.`,

	Args: cobra.ExactArgs(1),

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args[0])
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	// Add the process command to the root command.
	rootCmd.AddCommand(processCmd)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================
	// Local flags are only available to this command. Defaults here mirror the
	// built-in configuration defaults; an explicitly set flag wins over the
	// config file.

	processCmd.Flags().StringVarP(
		&delimiter,
		"delimiter",
		"d",
		"~",
		"Delimiter used in the input file",
	)

	processCmd.Flags().IntVarP(
		&maxRows,
		"max-rows",
		"m",
		1048576,
		"Maximum data rows per Excel workbook",
	)

	processCmd.Flags().StringVarP(
		&outputDir,
		"output-dir",
		"o",
		"",
		"Directory for generated workbooks (default: excel_output beside the input file)",
	)

	processCmd.Flags().IntVarP(
		&keyColumn,
		"key-column",
		"k",
		1,
		"0-based index of the column to group by",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess is the main function that orchestrates the pipeline.
func runProcess(cmd *cobra.Command, inputFile string) error {
	totalStart := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================
	// The default config file is optional; an explicitly requested one is not.

	cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagOverrides(cmd, cfg)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	inputAbs, err := filepath.Abs(inputFile)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}
	if !utils.FileExists(inputAbs) {
		return fmt.Errorf("input file does not exist: %s", inputAbs)
	}

	// Resolve the directory layout: intermediate and output folders default
	// to siblings of the input file.
	inputDir := filepath.Dir(inputAbs)
	intermediateDir := cfg.IntermediateDir
	if intermediateDir == "" {
		intermediateDir = filepath.Join(inputDir, "intermediate")
	}
	destDir := cfg.OutputDir
	if destDir == "" {
		destDir = filepath.Join(inputDir, "excel_output")
	}

	logger.Debug("resolved pipeline settings",
		zap.String("input", inputAbs),
		zap.String("intermediate_dir", intermediateDir),
		zap.String("output_dir", destDir),
		zap.String("delimiter", cfg.Delimiter),
		zap.Int("max_rows", cfg.MaxRows),
		zap.Int("key_column", cfg.KeyColumn))

	summary := utils.NewRunSummary(inputAbs)

	// =========================================================================
	// STEP 2: SPLIT THE INPUT FILE BY INSTRUCTION CODE
	// =========================================================================
	// Any failure here is fatal: a malformed input means no group can be
	// trusted, so nothing is written and the run aborts.

	fmt.Println("=== TXT to XLSX Converter ===")

	splitStart := time.Now()

	grouping, err := splitter.SplitFile(inputAbs, cfg.Delimiter, cfg.KeyColumn)
	if err != nil {
		return fmt.Errorf("splitting failed: %w", err)
	}

	artifacts, err := splitter.WriteGroups(grouping, intermediateDir)
	if err != nil {
		return fmt.Errorf("splitting failed: %w", err)
	}

	summary.SplitDuration = time.Since(splitStart)
	summary.GroupCount = grouping.Len()

	logger.Debug("split stage complete",
		zap.Int("groups", grouping.Len()),
		zap.Int("artifacts", len(artifacts)))

	fmt.Printf("Splitting took %.2f seconds\n", summary.SplitDuration.Seconds())
	fmt.Printf("Files created for each Instruction Code in: %s\n", intermediateDir)

	// =========================================================================
	// STEP 3: CONVERT EACH ARTIFACT TO EXCEL
	// =========================================================================
	// Artifacts are enumerated from the intermediate folder, sorted by name,
	// so a re-run over a pre-populated folder behaves the same way. Failures
	// are collected per artifact; the loop always runs to completion.

	if err := utils.EnsureDirectories(destDir); err != nil {
		return err
	}

	convertStart := time.Now()

	found, err := utils.DiscoverArtifacts(intermediateDir)
	if err != nil {
		return err
	}

	opts := converter.Options{
		Delimiter: cfg.Delimiter,
		MaxRows:   cfg.MaxRows,
		OutputDir: destDir,
	}

	for _, artifact := range found {
		result := converter.New(artifact, opts, logger).Run()
		summary.Results = append(summary.Results, result)

		if result.Success {
			for _, out := range result.OutputFiles {
				fmt.Printf("Created: %s\n", filepath.Base(out))
			}
		} else {
			logger.Warn("artifact conversion failed",
				zap.String("artifact", artifact),
				zap.Error(result.Error))
			fmt.Printf("Error processing %s: %v\n", artifact, result.Error)
		}
	}

	summary.ConvertDuration = time.Since(convertStart)
	fmt.Printf("Converting to Excel took %.2f seconds\n", summary.ConvertDuration.Seconds())

	// =========================================================================
	// STEP 4: SUMMARY
	// =========================================================================

	summary.EndTime = time.Now()

	fmt.Println("\nProcessing complete.")
	fmt.Printf("Total processing time: %.2f seconds\n", summary.EndTime.Sub(totalStart).Seconds())
	fmt.Printf("Total Excel files created: %d\n", summary.WorkbookCount())
	if summary.FailureCount() > 0 {
		fmt.Printf("Artifacts failed: %d\n", summary.FailureCount())
	}
	fmt.Println("Created files:")
	for _, result := range summary.Results {
		for _, out := range result.OutputFiles {
			fmt.Println(out)
		}
	}

	if summaryPath, err := utils.WriteSummaryLog(summary, destDir); err != nil {
		logger.Warn("failed to write run summary log", zap.Error(err))
	} else {
		logger.Debug("wrote run summary log", zap.String("path", summaryPath))
	}

	// Cleanup is opt-in; conversion failures always keep the intermediates
	// around for diagnosis.
	if cfg.CleanIntermediate && summary.FailureCount() == 0 {
		if err := utils.RemoveDirectory(intermediateDir); err != nil {
			logger.Warn("failed to clean intermediate directory", zap.Error(err))
		}
	}

	// Per-artifact failures were reported above; the run still exits zero.
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// applyFlagOverrides copies explicitly set command-line flags over the loaded
// configuration. Flags the user did not touch leave the config value alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.MainConfig) {
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = delimiter
	}
	if cmd.Flags().Changed("max-rows") {
		cfg.MaxRows = maxRows
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("key-column") {
		cfg.KeyColumn = keyColumn
	}
}
