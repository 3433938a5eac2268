// =============================================================================
// TXT to XLSX Converter - Converter Module
// =============================================================================
//
// This module runs the per-artifact half of the pipeline: it takes one
// intermediate text artifact and carries it through parsing, pagination, and
// workbook emission.
//
// CONVERSION PIPELINE (per artifact):
//   1. Parse the artifact as a delimited table (paginator.ParseArtifact)
//   2. Slice the table into row-budgeted batches (paginator.Paginate)
//   3. Emit one workbook per batch (xlsxwriter.Emit)
//
// FAILURE ISOLATION:
//   Run never lets an error escape: every outcome, success or failure, is
//   reported as a types.Result. The orchestrator collects the results and
//   keeps going, so one unparseable artifact does not abort the batch run.
//
// =============================================================================

package converter

import (
	"path/filepath"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/paginator"
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/xlsxwriter"
	"go.uber.org/zap"
)

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options carries the conversion settings for one artifact.
type Options struct {
	// Delimiter is the literal field separator used in the artifact.
	Delimiter string

	// MaxRows is the row budget per output workbook.
	MaxRows int

	// OutputDir is the directory where workbooks are written.
	OutputDir string
}

// Converter converts a single intermediate artifact to Excel workbooks.
type Converter struct {
	artifactPath string
	opts         Options
	logger       *zap.Logger
}

// New creates a converter for one artifact. A nil logger disables logging.
func New(artifactPath string, opts Options, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		artifactPath: artifactPath,
		opts:         opts,
		logger:       logger,
	}
}

// =============================================================================
// CONVERSION
// =============================================================================

// Run converts the artifact and reports the outcome as a Result.
func (c *Converter) Run() types.Result {
	result := types.Result{ArtifactPath: c.artifactPath}

	// =========================================================================
	// STEP 1: PARSE THE ARTIFACT
	// =========================================================================

	table, err := paginator.ParseArtifact(c.artifactPath, c.opts.Delimiter)
	if err != nil {
		result.Error = err
		return result
	}

	result.RowCount = table.RowCount()
	c.logger.Debug("parsed artifact",
		zap.String("artifact", c.artifactPath),
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", len(table.Headers)))

	// =========================================================================
	// STEP 2: PAGINATE
	// =========================================================================

	batches, err := paginator.Paginate(table, c.opts.MaxRows)
	if err != nil {
		result.Error = err
		return result
	}

	if len(batches) > 1 {
		c.logger.Debug("table exceeds row budget, splitting",
			zap.String("artifact", c.artifactPath),
			zap.Int("batches", len(batches)))
	}

	// =========================================================================
	// STEP 3: EMIT WORKBOOKS
	// =========================================================================

	for _, batch := range batches {
		outputPath := filepath.Join(c.opts.OutputDir, batch.Name+".xlsx")

		// Workbooks already written for earlier parts stay in place and stay
		// listed; there is no transactional guarantee across an artifact's
		// parts.
		if err := xlsxwriter.Emit(batch.Headers, batch.Rows, outputPath); err != nil {
			result.Error = err
			return result
		}

		result.OutputFiles = append(result.OutputFiles, outputPath)
		c.logger.Debug("created workbook",
			zap.String("workbook", outputPath),
			zap.Int("rows", len(batch.Rows)))
	}

	result.Success = true
	return result
}
