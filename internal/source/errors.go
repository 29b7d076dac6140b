package source

import (
	"errors"
	"fmt"

	"arkmotors/pkg/models"
)

// Common load errors
var (
	// ErrNoData is returned when neither the consolidated source nor the
	// legacy income workbook exists. Callers should stop and tell the user
	// where data was looked for.
	ErrNoData = errors.New("no data source found")

	// ErrSheetNotFound is returned when a workbook lacks the sheet a table is read from.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrHeaderOutOfRange is returned when a sheet has fewer rows than the header offset.
	ErrHeaderOutOfRange = errors.New("header row beyond end of sheet")

	// ErrFileNotFound is returned when a legacy workbook is missing.
	ErrFileNotFound = errors.New("workbook not found")
)

// LoadError records why a single table could not be loaded. The loader
// substitutes an empty table and keeps going; the error ends up in
// Snapshot.Failures.
type LoadError struct {
	// Op is the operation that failed (e.g. "readSheet", "openWorkbook").
	Op string

	// Table is the canonical table being loaded.
	Table models.TableID

	// Path is the workbook path or sheet URL.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("source: %s %s failed (%s): %v", e.Op, e.Table, e.Path, e.Err)
	}
	return fmt.Sprintf("source: %s %s failed: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *LoadError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewLoadError creates a LoadError, or returns err unchanged if it already is one.
func NewLoadError(op string, table models.TableID, path string, err error) error {
	if err == nil {
		return nil
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return err
	}

	return &LoadError{Op: op, Table: table, Path: path, Err: err}
}
