package models

// Table is a grid of cell text extracted from a PDF page. An empty string is an empty cell.
type Table struct {
	// Page is the 1-based page number the table was found on.
	Page int `json:"page"`
	// Rows holds the cell text row by row.
	Rows [][]string `json:"rows"`
}

// Page holds the tables found on a single PDF page, in reading order.
type Page struct {
	Number int     `json:"number"`
	Tables []Table `json:"tables"`
}

// Width returns the number of columns of the widest row.
func (t Table) Width() int {
	w := 0
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
