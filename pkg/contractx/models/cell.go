// Package models defines data structures for contract field extraction.
package models

// Cell is a single typed workbook value: nil (empty), int64, float64, bool or string.
type Cell = any

// CellRow represents a single row of cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C holds cell values in column order. Trailing empty cells may be omitted.
	C []Cell `json:"c"`
}

// At returns the cell at the zero-based column col, or nil when the row is shorter.
func (r CellRow) At(col int) Cell {
	if col < 0 || col >= len(r.C) {
		return nil
	}
	return r.C[col]
}

// Truthy reports whether a cell holds a value that is not empty, zero or false.
func Truthy(c Cell) bool {
	switch v := c.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case int64:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0
	case bool:
		return v
	default:
		return true
	}
}
