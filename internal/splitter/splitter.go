// =============================================================================
// TXT to XLSX Converter - Splitter Module
// =============================================================================
//
// This module implements the first pipeline stage: splitting a large delimited
// input file into per-key groups and writing each group to its own text
// artifact. The key is the Instruction Code column (configurable index,
// second column by default).
//
// SPLITTING PROCESS:
//   1. The first line of the input is the header; it is excluded from grouping
//      and repeated at the top of every group artifact.
//   2. Every subsequent line is split on the literal delimiter. There is no
//      quoting or escaping support; the split is an exact match.
//   3. The field at the key column index buckets the raw line into its group.
//      Lines keep their original relative order within a group.
//   4. Each group is written to <key>.txt in the intermediate directory:
//      header line first, then the group's lines, newline-terminated.
//
// ERROR POLICY:
//   Splitting is all-or-nothing. A data line with too few fields to reach the
//   key column fails the whole stage with a MalformedRecordError before any
//   artifact is written; once one line is malformed, no group can be trusted.
//
// =============================================================================

package splitter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
)

// =============================================================================
// GROUPING STRUCTURES
// =============================================================================

// Group holds the raw lines of one instruction code, in source order.
type Group struct {
	// Key is the group key: the value of the key column.
	Key string

	// Lines contains the raw data lines (line endings stripped) belonging to
	// this key, in the order they appeared in the source file.
	Lines []string
}

// Grouping is the result of splitting an input file: the header line plus the
// groups in first-encounter order.
//
// Groups are kept in an ordered structure rather than a bare map so that
// artifact enumeration order is deterministic across runs.
type Grouping struct {
	// Header is the header line, shared verbatim by every group artifact.
	Header string

	// groups holds the groups in the order their keys were first encountered.
	groups []*Group

	// index maps a key to its group for O(1) bucketing.
	index map[string]*Group
}

// Groups returns the groups in first-encounter order.
func (g *Grouping) Groups() []*Group {
	return g.groups
}

// Group returns the group for the given key, or nil if the key was never seen.
func (g *Grouping) Group(key string) *Group {
	return g.index[key]
}

// Len returns the number of distinct keys.
func (g *Grouping) Len() int {
	return len(g.groups)
}

// add appends a line to the group for key, creating the group on first use.
func (g *Grouping) add(key, line string) {
	group, ok := g.index[key]
	if !ok {
		group = &Group{Key: key}
		g.index[key] = group
		g.groups = append(g.groups, group)
	}
	group.Lines = append(group.Lines, line)
}

// =============================================================================
// SPLITTING FUNCTIONS
// =============================================================================

// Split reads a delimited input and buckets its data lines by the key column.
//
// PARAMETERS:
//   - r: The input source. The first line must be the header.
//   - delimiter: The literal field separator.
//   - keyColumn: The 0-based index of the group key field.
//
// RETURNS:
//   - A Grouping with the header and all groups in first-encounter order.
//   - An error if the input is empty, a line cannot be read, or any data line
//     has too few fields to reach the key column (MalformedRecordError).
//
// Split is a pure function over its input: it performs no file system side
// effects. Writing the groups out is WriteGroups' job.
func Split(r io.Reader, delimiter string, keyColumn int) (*Grouping, error) {
	if delimiter == "" {
		return nil, &types.ConfigurationError{Setting: "delimiter", Reason: "must not be empty"}
	}
	if keyColumn < 0 {
		return nil, &types.ConfigurationError{
			Setting: "key_column",
			Reason:  fmt.Sprintf("must be a non-negative column index, got %d", keyColumn),
		}
	}

	scanner := bufio.NewScanner(r)
	// Lines can be wide; raise the scanner's cap well beyond the 64K default.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	// The first line is the header and is never grouped.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return nil, fmt.Errorf("input is empty: expected a header line")
	}

	grouping := &Grouping{
		Header: trimLineEnding(scanner.Text()),
		index:  make(map[string]*Group),
	}

	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		line := trimLineEnding(scanner.Text())

		fields := strings.Split(line, delimiter)
		if len(fields) <= keyColumn {
			return nil, &types.MalformedRecordError{
				Line:       lineNumber,
				FieldCount: len(fields),
				Required:   keyColumn + 1,
			}
		}

		grouping.add(fields[keyColumn], line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return grouping, nil
}

// SplitFile opens an input file and splits it. See Split.
func SplitFile(inputPath, delimiter string, keyColumn int) (*Grouping, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return Split(file, delimiter, keyColumn)
}

// trimLineEnding strips a trailing CR left behind by CRLF line endings.
// bufio.Scanner already strips the LF. Interior whitespace is untouched.
func trimLineEnding(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// =============================================================================
// GROUP WRITING FUNCTIONS
// =============================================================================

// WriteGroups writes one text artifact per group into destDir.
//
// PARAMETERS:
//   - grouping: The grouping produced by Split.
//   - destDir: The intermediate directory. Created if absent.
//
// RETURNS:
//   - The artifact paths, one per group, in group insertion order.
//   - An error if the directory or any artifact cannot be created. Artifacts
//     already written before the failure are not cleaned up; the stage makes
//     no transactional guarantee across the group set.
//
// Artifacts are named "<key>.txt" with the key used verbatim. Keys containing
// path-unsafe characters are the caller's responsibility to avoid.
func WriteGroups(grouping *Grouping, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	paths := make([]string, 0, grouping.Len())
	for _, group := range grouping.Groups() {
		path := filepath.Join(destDir, group.Key+".txt")
		if err := writeGroup(grouping.Header, group, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeGroup writes a single group artifact: header first, then the group's
// lines, each newline-terminated.
func writeGroup(header string, group *Group, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact for key %q: %w", group.Key, err)
	}

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(header + "\n"); err != nil {
		file.Close()
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	for _, line := range group.Lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			file.Close()
			return fmt.Errorf("failed to write artifact %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close artifact %s: %w", path, err)
	}

	return nil
}
