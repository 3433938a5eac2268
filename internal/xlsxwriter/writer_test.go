package xlsxwriter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEmit(t *testing.T) {
	t.Run("writes a single-sheet workbook with header and rows in order", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "A.xlsx")

		headers := []string{"id", "code", "amount"}
		rows := [][]string{
			{"1", "A", "10"},
			{"3", "A", "30"},
		}
		require.NoError(t, Emit(headers, rows, dest))

		f, err := excelize.OpenFile(dest)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{SheetName}, f.GetSheetList())

		got, err := f.GetRows(SheetName)
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"id", "code", "amount"},
			{"1", "A", "10"},
			{"3", "A", "30"},
		}, got)
	})

	t.Run("keeps all values as text", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "codes.xlsx")

		headers := []string{"code", "date"}
		rows := [][]string{{"00731", "2024-01-02"}}
		require.NoError(t, Emit(headers, rows, dest))

		f, err := excelize.OpenFile(dest)
		require.NoError(t, err)
		defer f.Close()

		// Leading zeros must survive; a numeric cell would render "731".
		value, err := f.GetCellValue(SheetName, "A2")
		require.NoError(t, err)
		assert.Equal(t, "00731", value)

		cellType, err := f.GetCellType(SheetName, "A2")
		require.NoError(t, err)
		assert.Equal(t, excelize.CellTypeSharedString, cellType)
	})

	t.Run("fails when the destination cannot be created", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "no", "such", "dir", "A.xlsx")

		err := Emit([]string{"h"}, [][]string{{"v"}}, dest)
		var writeErr *types.WriteError
		require.True(t, errors.As(err, &writeErr))
		assert.Equal(t, dest, writeErr.Path)
	})

	t.Run("fails when rows plus header exceed the sheet limit", func(t *testing.T) {
		// The limit check runs before any cell is written, so an over-limit
		// row slice is cheap to construct.
		rows := make([][]string, maxSheetRows)

		err := Emit([]string{"h"}, rows, filepath.Join(t.TempDir(), "big.xlsx"))
		var writeErr *types.WriteError
		require.True(t, errors.As(err, &writeErr))
	})

	t.Run("fails when the column count exceeds the sheet limit", func(t *testing.T) {
		headers := make([]string, maxSheetColumns+1)

		err := Emit(headers, nil, filepath.Join(t.TempDir(), "wide.xlsx"))
		var writeErr *types.WriteError
		require.True(t, errors.As(err, &writeErr))
	})

	t.Run("an empty batch still produces a workbook with the header row", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "empty.xlsx")

		require.NoError(t, Emit([]string{"id", "code"}, nil, dest))

		f, err := excelize.OpenFile(dest)
		require.NoError(t, err)
		defer f.Close()

		got, err := f.GetRows(SheetName)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"id", "code"}}, got)
	})
}
