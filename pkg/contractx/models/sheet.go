package models

// SheetData represents the rows of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains every row from row 1 to the last non-empty row, empty rows included.
	Rows []CellRow `json:"rows,omitempty"`
}

// Header returns the first row of the sheet, or nil for an empty sheet.
func (s SheetData) Header() []Cell {
	if len(s.Rows) == 0 || s.Rows[0].R != 1 {
		return nil
	}
	return s.Rows[0].C
}

// DataRows returns the rows after the header.
func (s SheetData) DataRows() []CellRow {
	if len(s.Rows) == 0 {
		return nil
	}
	if s.Rows[0].R != 1 {
		return s.Rows
	}
	return s.Rows[1:]
}
