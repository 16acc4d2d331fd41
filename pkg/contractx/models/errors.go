package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates a missing input file or a lookup with no result.
var ErrNotFound = errors.New("not found")

// ErrInvalidState indicates an operation invoked before its prerequisite load.
var ErrInvalidState = errors.New("invalid state")

// ErrInvalidColumn indicates a column name absent from a workbook header.
var ErrInvalidColumn = errors.New("invalid column")

// InvalidColumnError reports a requested column together with the columns that exist.
type InvalidColumnError struct {
	Column string
	Valid  []string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("column %q does not exist; valid columns: [%s]", e.Column, strings.Join(e.Valid, ", "))
}

func (e *InvalidColumnError) Unwrap() error {
	return ErrInvalidColumn
}

// RowConversionError represents a reference row whose attribute failed integer conversion.
type RowConversionError struct {
	Row    int
	Column string
	Value  Cell
	Err    error
}

func (e *RowConversionError) Error() string {
	return fmt.Sprintf("row %d: column %q value %v: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowConversionError) Unwrap() error {
	return e.Err
}

// WorkbookReadError represents a failure reading a workbook or one of its sheets.
type WorkbookReadError struct {
	Path      string
	SheetName string // empty when the workbook itself could not be opened
	Err       error
}

func (e *WorkbookReadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("read workbook %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read workbook %s, sheet %q: %v", e.Path, e.SheetName, e.Err)
}

func (e *WorkbookReadError) Unwrap() error {
	return e.Err
}
