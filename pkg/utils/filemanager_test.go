package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverArtifacts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"B.txt", "A.txt", "notes.md", "C.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
	}

	found, err := DiscoverArtifacts(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "A.txt"),
		filepath.Join(dir, "B.txt"),
		filepath.Join(dir, "C.txt"),
	}, found, "only *.txt files, sorted by name")
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	first := filepath.Join(base, "a", "b")
	second := filepath.Join(base, "c")

	require.NoError(t, EnsureDirectories(first, second))
	// Idempotent.
	require.NoError(t, EnsureDirectories(first, second))

	for _, dir := range []string{first, second} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestRunSummary(t *testing.T) {
	summary := NewRunSummary("/data/export.txt")
	summary.GroupCount = 2
	summary.Results = []types.Result{
		{
			ArtifactPath: "/data/intermediate/A.txt",
			Success:      true,
			RowCount:     2,
			OutputFiles:  []string{"/data/excel_output/A_part1.xlsx", "/data/excel_output/A_part2.xlsx"},
		},
		{
			ArtifactPath: "/data/intermediate/B.txt",
			Success:      false,
			Error:        errors.New("boom"),
		},
	}
	summary.EndTime = summary.StartTime

	assert.Equal(t, 2, summary.WorkbookCount())
	assert.Equal(t, 1, summary.FailureCount())

	t.Run("summary log lists every artifact outcome", func(t *testing.T) {
		dir := t.TempDir()
		path, err := WriteSummaryLog(summary, dir)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		text := string(content)

		assert.Contains(t, text, summary.RunID.String())
		assert.Contains(t, text, "OK     A.txt (2 row(s))")
		assert.Contains(t, text, "A_part2.xlsx")
		assert.Contains(t, text, "FAILED B.txt")
		assert.Contains(t, text, "boom")
	})
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}
