// =============================================================================
// TXT to XLSX Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - splitter
//   - paginator
//   - converter
//   - xlsxwriter
//   - config
//   - pkg/utils
//
// =============================================================================

package types

import "fmt"

// =============================================================================
// PIPELINE TYPES
// =============================================================================

// Result represents the outcome of converting a single intermediate artifact
// to one or more Excel workbooks. Per-artifact errors are carried here instead
// of crossing stage boundaries, so one bad artifact never aborts the run.
type Result struct {
	// ArtifactPath is the path to the intermediate text artifact.
	ArtifactPath string

	// Success indicates whether the conversion completed.
	Success bool

	// OutputFiles lists the workbook paths created for this artifact,
	// in part order.
	OutputFiles []string

	// RowCount is the number of data rows parsed from the artifact.
	RowCount int

	// Error holds the failure cause when Success is false.
	Error error
}

// =============================================================================
// ERROR KINDS
// =============================================================================
// Each pipeline stage reports failures through one of the typed errors below
// so callers can distinguish them with errors.As.

// MalformedRecordError reports a data line with too few fields to contain the
// group key. Grouping aborts on the first occurrence: once one line is
// malformed, no group can be trusted.
type MalformedRecordError struct {
	// Line is the 1-based line number of the offending line.
	Line int

	// FieldCount is the number of fields the line actually had.
	FieldCount int

	// Required is the minimum number of fields needed to reach the key column.
	Required int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed record: %d field(s), need at least %d",
		e.Line, e.FieldCount, e.Required)
}

// ConfigurationError reports an invalid configuration value, such as a
// non-positive max row count or an empty delimiter. It is raised before any
// parsing or writing takes place.
type ConfigurationError struct {
	// Setting is the name of the offending setting.
	Setting string

	// Reason describes why the value is invalid.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Setting, e.Reason)
}

// ParseError reports that a single intermediate artifact could not be parsed
// as a delimited table. It fails only that artifact; the run continues.
type ParseError struct {
	// Artifact is the path of the artifact that failed to parse.
	Artifact string

	// Line is the 1-based line number where parsing failed, or 0 when the
	// failure is not tied to a particular line.
	Line int

	// Reason describes the failure.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Artifact, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Artifact, e.Reason)
}

// WriteError reports a workbook serialization failure: the destination could
// not be created, or the batch exceeds the XLSX format's hard limits.
type WriteError struct {
	// Path is the destination workbook path.
	Path string

	// Reason describes the failure.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (e *WriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to write workbook %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to write workbook %s: %s", e.Path, e.Reason)
}

// Unwrap exposes the underlying error for errors.Is/errors.As chains.
func (e *WriteError) Unwrap() error {
	return e.Err
}
