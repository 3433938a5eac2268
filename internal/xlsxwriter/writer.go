// =============================================================================
// TXT to XLSX Converter - Workbook Writer Module
// =============================================================================
//
// This module implements the final pipeline stage: serializing a row batch to
// an Excel workbook. Each workbook contains a single sheet named "Sheet1",
// with the column headers as the first row and the batch rows after it.
//
// TEXT-ONLY CELLS:
//   Every cell is written as a string cell. Values are never coerced to
//   numbers or dates, so instruction codes and identifiers with leading zeros
//   survive the round trip to Excel unchanged.
//
// FORMAT LIMITS:
//   The XLSX format caps a sheet at 1048576 rows and 16384 columns. A batch
//   that exceeds either limit (including the header row) fails with a
//   WriteError; a max_rows configured at or above the row ceiling is a caller
//   error that this module reports rather than corrects.
//
// =============================================================================

package xlsxwriter

import (
	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"github.com/xuri/excelize/v2"
)

// SheetName is the fixed name of the single sheet in every output workbook.
const SheetName = "Sheet1"

// XLSX format hard limits, header row included.
const (
	maxSheetRows    = 1048576
	maxSheetColumns = 16384
)

// Emit writes one workbook containing the headers and rows, in order.
//
// PARAMETERS:
//   - headers: The column headers, written as the first row.
//   - rows: The data rows, written after the headers in order.
//   - destPath: The workbook destination path.
//
// RETURNS:
//   - A WriteError if the batch exceeds the XLSX format limits or the
//     workbook cannot be serialized to destPath.
func Emit(headers []string, rows [][]string, destPath string) error {
	if len(rows)+1 > maxSheetRows {
		return &types.WriteError{
			Path: destPath,
			Reason: "row count exceeds the XLSX sheet limit " +
				"(max_rows leaves no room for the header row)",
		}
	}
	if len(headers) > maxSheetColumns {
		return &types.WriteError{
			Path:   destPath,
			Reason: "column count exceeds the XLSX sheet limit",
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	// A new excelize file already contains "Sheet1"; write straight into it.
	if err := writeRow(f, 1, headers); err != nil {
		return &types.WriteError{Path: destPath, Reason: "failed to write header row", Err: err}
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return &types.WriteError{Path: destPath, Reason: "failed to write row", Err: err}
		}
	}

	if err := f.SaveAs(destPath); err != nil {
		return &types.WriteError{Path: destPath, Reason: "failed to save workbook", Err: err}
	}

	return nil
}

// writeRow writes one sheet row (1-based row number) with every cell as text.
func writeRow(f *excelize.File, rowNumber int, fields []string) error {
	for col, value := range fields {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNumber)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
