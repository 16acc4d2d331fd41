package pdftable

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

// word lays out s as one glyph per rune, 5 points wide, starting at x on baseline y.
func word(s string, x, y float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{S: string(r), X: x, Y: y, W: 5, FontSize: 10})
		x += 5
	}
	return out
}

func glyphs(parts ...[]pdf.Text) []pdf.Text {
	var out []pdf.Text
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestGroupLines(t *testing.T) {
	texts := glyphs(
		word("b", 10, 100),
		word("a", 10, 700),
		word("c", 20, 700.5),
	)

	lines := groupLines(texts, 2.0)

	require.Len(t, lines, 2)
	assert.Equal(t, 700.0, lines[0].y, "top line first")
	require.Len(t, lines[0].glyphs, 2)
	assert.Equal(t, "a", lines[0].glyphs[0].S)
	assert.Equal(t, "c", lines[0].glyphs[1].S)
	assert.Equal(t, "b", lines[1].glyphs[0].S)
}

func TestSplitCells(t *testing.T) {
	// "Serviço" and "X" are 3 points apart: same cell, with a space.
	texts := glyphs(
		word("Serviço", 100, 500),
		word("X", 138, 500),
		word("1.500,00", 200, 500),
	)
	lines := groupLines(texts, 2.0)
	require.Len(t, lines, 1)

	cells := splitCells(lines[0], DefaultParams())

	require.Len(t, cells, 2)
	assert.Equal(t, "Serviço X", cells[0].text)
	assert.Equal(t, 100.0, cells[0].x0)
	assert.Equal(t, "1.500,00", cells[1].text)
}

func TestDetectTables(t *testing.T) {
	texts := glyphs(
		word("Fatura de serviços", 50, 780),
		word("Contrato", 50, 700),
		word("Conceito", 150, 700),
		word("Valor", 250, 700),
		word("123456789", 50, 685),
		word("Serviço X", 150, 685),
		word("1.500,00", 250, 685),
		word("Obrigado", 50, 600),
	)

	tables := detectTables(texts, DefaultParams())

	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{
		{"Contrato", "Conceito", "Valor"},
		{"123456789", "Serviço X", "1.500,00"},
	}, tables[0])
}

func TestDetectTablesAlignsMissingCells(t *testing.T) {
	texts := glyphs(
		word("Contrato", 50, 700),
		word("Conceito", 150, 700),
		word("Valor", 250, 700),
		word("42", 50, 685),
		word("10,00", 250, 685),
	)

	tables := detectTables(texts, DefaultParams())

	require.Len(t, tables, 1)
	assert.Equal(t, []string{"42", "", "10,00"}, tables[0][1])
}

func TestDetectTablesSeparatedBlocks(t *testing.T) {
	texts := glyphs(
		word("A", 50, 700), word("B", 150, 700),
		word("1", 50, 690), word("2", 150, 690),
		word("single line breaks the table", 50, 650),
		word("C", 50, 600), word("D", 150, 600),
		word("3", 50, 590), word("4", 150, 590),
	)

	tables := detectTables(texts, DefaultParams())

	require.Len(t, tables, 2)
	assert.Equal(t, [][]string{{"A", "B"}, {"1", "2"}}, tables[0])
	assert.Equal(t, [][]string{{"C", "D"}, {"3", "4"}}, tables[1])
}

func TestTrimGrid(t *testing.T) {
	p := DefaultParams()

	grid := [][]string{
		{"", "", ""},
		{"", "a", "b"},
		{"", "c", ""},
	}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", ""}}, trimGrid(grid, p))

	assert.Nil(t, trimGrid([][]string{{"", ""}}, p), "empty grid")
	assert.Nil(t, trimGrid([][]string{{"a", "b"}}, p), "below MinNonemptyCells")
}

func TestTables(t *testing.T) {
	pages := []models.Page{
		{Number: 1, Tables: []models.Table{{Page: 1}, {Page: 1}}},
		{Number: 2},
		{Number: 3, Tables: []models.Table{{Page: 3}}},
	}
	tables := Tables(pages)
	require.Len(t, tables, 3)
	assert.Equal(t, 3, tables[2].Page)
}

func TestLines(t *testing.T) {
	texts := glyphs(
		word("Valor Total:", 50, 700),
		word("R$ 1.500,00", 200, 700),
		word("Conceito", 50, 680),
	)

	assert.Equal(t, []string{"Valor Total: R$ 1.500,00", "Conceito"}, Lines(texts, DefaultParams()))
}
