// =============================================================================
// TXT to XLSX Converter - Paginator Module
// =============================================================================
//
// This module implements the second pipeline stage: reading an intermediate
// text artifact back as a delimited table and slicing it into row-budgeted
// batches, one per output workbook.
//
// PAGINATION RULES:
//   - A table of n rows with budget m produces ceil(n/m) batches.
//   - Batch i (1-based) holds rows [(i-1)*m, min(i*m, n)), order preserved.
//   - A table that fits in one batch is named after the artifact's base name
//     with no part suffix; a split table's batches are named <base>_part<i>.
//
// ERROR POLICY:
//   Parsing failures (a row whose field count disagrees with the header) fail
//   only the artifact at hand with a ParseError; the caller continues with the
//   remaining artifacts. A non-positive row budget is a ConfigurationError
//   raised before any parsing occurs.
//
// =============================================================================

package paginator

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table represents a parsed intermediate artifact.
type Table struct {
	// Headers contains the column headers from the artifact's first line.
	Headers []string

	// Rows contains the data rows as field slices, in artifact order.
	// Every value is text; no type inference is performed.
	Rows [][]string

	// SourceFile is the path to the source artifact.
	SourceFile string

	// BaseName is the artifact's file name without extension, used to name
	// the output batches.
	BaseName string
}

// RowCount returns the number of data rows in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// =============================================================================
// BATCH STRUCTURE
// =============================================================================

// Batch is a contiguous, row-budget-bounded slice of a table destined for one
// workbook.
type Batch struct {
	// Name is the output base name: the artifact base name, with a
	// "_part<N>" suffix when the table was split.
	Name string

	// Part is the 1-based part number, or 0 when the table fit in one batch.
	Part int

	// Headers are the column headers, shared by every batch of a table.
	Headers []string

	// Rows are this batch's data rows, in original order.
	Rows [][]string
}

// =============================================================================
// PARSING FUNCTIONS
// =============================================================================

// ParseArtifact reads an intermediate artifact as a delimited table.
//
// PARAMETERS:
//   - path: The artifact path.
//   - delimiter: The literal field separator, matching the one used to write
//     the artifact.
//
// RETURNS:
//   - A pointer to the parsed Table.
//   - A ParseError if the artifact is empty or a row's field count disagrees
//     with the header; a wrapped I/O error if the file cannot be read.
func ParseArtifact(path, delimiter string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read artifact: %w", err)
		}
		return nil, &types.ParseError{Artifact: path, Reason: "artifact is empty: expected a header line"}
	}

	headers := strings.Split(strings.TrimSuffix(scanner.Text(), "\r"), delimiter)

	table := &Table{
		Headers:    headers,
		SourceFile: path,
		BaseName:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		fields := strings.Split(line, delimiter)
		if len(fields) != len(headers) {
			return nil, &types.ParseError{
				Artifact: path,
				Line:     lineNumber,
				Reason: fmt.Sprintf("row has %d field(s), header has %d",
					len(fields), len(headers)),
			}
		}

		table.Rows = append(table.Rows, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	return table, nil
}

// =============================================================================
// PAGINATION FUNCTIONS
// =============================================================================

// Paginate slices a table into batches of at most maxRows rows.
//
// PARAMETERS:
//   - table: The parsed table.
//   - maxRows: The row budget per batch. Must be positive.
//
// RETURNS:
//   - The batches in row order. A table within the budget yields exactly one
//     batch named table.BaseName; a larger table yields ceil(n/maxRows)
//     batches named <BaseName>_part<i>.
//   - A ConfigurationError when maxRows is not positive.
func Paginate(table *Table, maxRows int) ([]Batch, error) {
	if maxRows <= 0 {
		return nil, &types.ConfigurationError{
			Setting: "max_rows",
			Reason:  fmt.Sprintf("must be a positive integer, got %d", maxRows),
		}
	}

	n := table.RowCount()

	// Within budget: one batch, no part suffix.
	if n <= maxRows {
		return []Batch{{
			Name:    table.BaseName,
			Headers: table.Headers,
			Rows:    table.Rows,
		}}, nil
	}

	numBatches := (n + maxRows - 1) / maxRows
	batches := make([]Batch, 0, numBatches)

	for i := 1; i <= numBatches; i++ {
		start := (i - 1) * maxRows
		end := i * maxRows
		if end > n {
			end = n
		}

		batches = append(batches, Batch{
			Name:    fmt.Sprintf("%s_part%d", table.BaseName, i),
			Part:    i,
			Headers: table.Headers,
			Rows:    table.Rows[start:end],
		})
	}

	return batches, nil
}
