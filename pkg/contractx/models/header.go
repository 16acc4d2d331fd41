package models

// HeaderIndex maps a field to the zero-based column holding it within one sheet.
// A missing key means no header cell matched.
type HeaderIndex map[Field]int

// Column returns the column for f and whether it was resolved.
func (h HeaderIndex) Column(f Field) (int, bool) {
	col, ok := h[f]
	return col, ok
}
