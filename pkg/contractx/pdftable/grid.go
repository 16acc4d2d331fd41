package pdftable

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Params holds parameters for glyph grouping and table detection.
type Params struct {
	// RowTolerance is the maximum vertical distance between glyphs of one line, in points.
	RowTolerance float64
	// ColumnGap is the minimum horizontal gap that starts a new cell, in points.
	ColumnGap float64
	// SpaceRatio is the gap, relative to font size, above which a space is inserted inside a cell.
	SpaceRatio float64
	// MinColumns is the number of cells a line needs to be part of a table.
	MinColumns int
	// DensityMin is the minimum ratio of non-empty cells in a table grid.
	DensityMin float64
	// MinNonemptyCells is the minimum number of non-empty cells in a table grid.
	MinNonemptyCells int
}

// DefaultParams returns default table detection parameters.
func DefaultParams() Params {
	return Params{
		RowTolerance:     2.0,
		ColumnGap:        8.0,
		SpaceRatio:       0.2,
		MinColumns:       2,
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// line is a group of glyphs sharing a baseline.
type line struct {
	y      float64
	glyphs []pdf.Text
}

// cell is a run of glyphs separated from its neighbours by at least ColumnGap.
type cell struct {
	x0, x1 float64
	text   string
}

// groupLines groups glyphs into lines by Y within tolerance and orders them top to bottom, left to right.
func groupLines(texts []pdf.Text, tolerance float64) []line {
	var lines []line
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		placed := false
		for i := range lines {
			if math.Abs(lines[i].y-t.Y) < tolerance {
				lines[i].glyphs = append(lines[i].glyphs, t)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, line{y: t.Y, glyphs: []pdf.Text{t}})
		}
	}

	// PDF user space grows upward, so the top line has the largest Y.
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })
	for i := range lines {
		sort.SliceStable(lines[i].glyphs, func(a, b int) bool {
			return lines[i].glyphs[a].X < lines[i].glyphs[b].X
		})
	}
	return lines
}

// splitCells splits a line into cells at horizontal gaps of at least ColumnGap.
func splitCells(l line, p Params) []cell {
	var cells []cell
	var cur *cell
	var sb strings.Builder
	var prevEnd, prevSize float64

	flush := func() {
		if cur == nil {
			return
		}
		cur.text = strings.TrimSpace(sb.String())
		if cur.text != "" {
			cells = append(cells, *cur)
		}
		cur = nil
		sb.Reset()
	}

	for _, g := range l.glyphs {
		blank := strings.TrimFunc(g.S, unicode.IsSpace) == ""
		if cur != nil {
			gap := g.X - prevEnd
			if gap >= p.ColumnGap {
				flush()
			} else if !blank && gap > spaceWidth(prevSize, p) {
				sb.WriteByte(' ')
			}
		}
		if cur == nil {
			if blank {
				continue
			}
			cur = &cell{x0: g.X}
		}
		sb.WriteString(g.S)
		end := g.X + g.W
		if end > cur.x1 {
			cur.x1 = end
		}
		prevEnd = end
		prevSize = g.FontSize
	}
	flush()
	return cells
}

func spaceWidth(fontSize float64, p Params) float64 {
	if fontSize <= 0 {
		fontSize = 10
	}
	return fontSize * p.SpaceRatio
}

// span is a column extent shared by the cells of a table.
type span struct{ x0, x1 float64 }

// columnSpans merges overlapping cell extents into column spans ordered left to right.
func columnSpans(rows [][]cell) []span {
	var all []span
	for _, row := range rows {
		for _, c := range row {
			all = append(all, span{c.x0, c.x1})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].x0 < all[j].x0 })

	var merged []span
	for _, s := range all {
		if n := len(merged); n > 0 && s.x0 <= merged[n-1].x1 {
			if s.x1 > merged[n-1].x1 {
				merged[n-1].x1 = s.x1
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// columnOf returns the index of the span containing the cell's midpoint, or the nearest span.
func columnOf(spans []span, c cell) int {
	mid := (c.x0 + c.x1) / 2
	best, bestDist := 0, math.Inf(1)
	for i, s := range spans {
		if mid >= s.x0 && mid <= s.x1 {
			return i
		}
		d := math.Min(math.Abs(mid-s.x0), math.Abs(mid-s.x1))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// buildGrid lays out rows of cells on shared columns. Cells landing in the same column are joined by a space.
func buildGrid(rows [][]cell) [][]string {
	spans := columnSpans(rows)
	grid := make([][]string, len(rows))
	for r, row := range rows {
		grid[r] = make([]string, len(spans))
		for _, c := range row {
			col := columnOf(spans, c)
			if grid[r][col] != "" {
				grid[r][col] += " " + c.text
			} else {
				grid[r][col] = c.text
			}
		}
	}
	return grid
}

// detectTables segments the lines of a page into tables: runs of consecutive lines with at least MinColumns cells.
func detectTables(texts []pdf.Text, p Params) [][][]string {
	var tables [][][]string
	var block [][]cell

	closeBlock := func() {
		if len(block) == 0 {
			return
		}
		if grid := trimGrid(buildGrid(block), p); grid != nil {
			tables = append(tables, grid)
		}
		block = nil
	}

	for _, l := range groupLines(texts, p.RowTolerance) {
		cells := splitCells(l, p)
		if len(cells) >= p.MinColumns {
			block = append(block, cells)
			continue
		}
		closeBlock()
	}
	closeBlock()
	return tables
}

// trimGrid crops a grid to the bounding box of its non-empty cells and
// rejects grids that are too sparse to be a table.
func trimGrid(rows [][]string, p Params) [][]string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < p.MinNonemptyCells {
		return nil
	}
	if float64(nonEmptyCells)/float64(totalCells) < p.DensityMin {
		return nil
	}

	out := make([][]string, 0, maxRow-minRow+1)
	for r := minRow; r <= maxRow; r++ {
		row := make([]string, maxCol-minCol+1)
		for c := minCol; c <= maxCol && c < len(rows[r]); c++ {
			row[c-minCol] = rows[r][c]
		}
		out = append(out, row)
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
