package paginator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseArtifact(t *testing.T) {
	t.Run("parses header and rows as text", func(t *testing.T) {
		path := writeArtifact(t, "A.txt", "id~code~amount\n007~A~10\n2~A~0030\n")

		table, err := ParseArtifact(path, "~")
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "code", "amount"}, table.Headers)
		require.Equal(t, 2, table.RowCount())
		// Leading zeros survive: values are never coerced to numbers.
		assert.Equal(t, []string{"007", "A", "10"}, table.Rows[0])
		assert.Equal(t, []string{"2", "A", "0030"}, table.Rows[1])
		assert.Equal(t, "A", table.BaseName)
	})

	t.Run("fails on inconsistent field count with the line number", func(t *testing.T) {
		path := writeArtifact(t, "B.txt", "id~code\n1~B\n1~B~extra\n")

		_, err := ParseArtifact(path, "~")
		require.Error(t, err)

		var parseErr *types.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, path, parseErr.Artifact)
		assert.Equal(t, 3, parseErr.Line)
	})

	t.Run("fails on an empty artifact", func(t *testing.T) {
		path := writeArtifact(t, "empty.txt", "")

		_, err := ParseArtifact(path, "~")
		var parseErr *types.ParseError
		require.True(t, errors.As(err, &parseErr))
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := ParseArtifact(filepath.Join(t.TempDir(), "missing.txt"), "~")
		assert.Error(t, err)
	})
}

func makeTable(base string, n int) *Table {
	t := &Table{
		Headers:  []string{"id", "code"},
		BaseName: base,
	}
	for i := 1; i <= n; i++ {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("%d", i), "X"})
	}
	return t
}

func TestPaginate(t *testing.T) {
	t.Run("rejects a non-positive row budget", func(t *testing.T) {
		for _, maxRows := range []int{0, -1} {
			_, err := Paginate(makeTable("A", 3), maxRows)

			var cfgErr *types.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "max_rows", cfgErr.Setting)
		}
	})

	t.Run("table within budget yields one batch without a part suffix", func(t *testing.T) {
		batches, err := Paginate(makeTable("A", 5), 5)
		require.NoError(t, err)

		require.Len(t, batches, 1)
		assert.Equal(t, "A", batches[0].Name)
		assert.Equal(t, 0, batches[0].Part)
		assert.Len(t, batches[0].Rows, 5)
	})

	t.Run("table over budget splits into numbered parts", func(t *testing.T) {
		batches, err := Paginate(makeTable("A", 7), 3)
		require.NoError(t, err)

		require.Len(t, batches, 3)
		assert.Equal(t, "A_part1", batches[0].Name)
		assert.Equal(t, "A_part2", batches[1].Name)
		assert.Equal(t, "A_part3", batches[2].Name)
		assert.Len(t, batches[0].Rows, 3)
		assert.Len(t, batches[1].Rows, 3)
		assert.Len(t, batches[2].Rows, 1)
	})

	t.Run("batch count is ceil(n/m) and rows are preserved in order", func(t *testing.T) {
		cases := []struct {
			n, m, want int
		}{
			{1, 1, 1},
			{2, 1, 2},
			{10, 3, 4},
			{9, 3, 3},
			{100, 7, 15},
		}

		for _, tc := range cases {
			batches, err := Paginate(makeTable("T", tc.n), tc.m)
			require.NoError(t, err)
			assert.Len(t, batches, tc.want, "n=%d m=%d", tc.n, tc.m)

			var total int
			var seen []string
			for _, b := range batches {
				assert.LessOrEqual(t, len(b.Rows), tc.m)
				total += len(b.Rows)
				for _, row := range b.Rows {
					seen = append(seen, row[0])
				}
			}
			assert.Equal(t, tc.n, total)

			for i, id := range seen {
				assert.Equal(t, fmt.Sprintf("%d", i+1), id,
					"row order must be preserved across batch boundaries")
			}
		}
	})

	t.Run("boundary: n exactly one over the budget", func(t *testing.T) {
		batches, err := Paginate(makeTable("A", 4), 3)
		require.NoError(t, err)

		require.Len(t, batches, 2)
		assert.Len(t, batches[0].Rows, 3)
		assert.Len(t, batches[1].Rows, 1)
	})

	t.Run("empty table yields one empty batch", func(t *testing.T) {
		batches, err := Paginate(makeTable("A", 0), 10)
		require.NoError(t, err)

		require.Len(t, batches, 1)
		assert.Equal(t, "A", batches[0].Name)
		assert.Empty(t, batches[0].Rows)
	})
}
