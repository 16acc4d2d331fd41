package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	tables := []models.Table{
		{Page: 1, Rows: [][]string{
			{"Contrato", "Conceito", "Valor"},
			{"123456789", "Serviço X", "1.500,00"},
			{"", "Total", ""},
		}},
		{Page: 2, Rows: [][]string{{"Observação"}}},
	}

	path := filepath.Join(t.TempDir(), "gen.xlsx")
	require.NoError(t, Write(path, tables, Options{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Tabela_1", "Tabela_2"}, f.GetSheetList())

	rows, err := f.GetRows("Tabela_1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Contrato", "Conceito", "Valor"}, rows[0])
	assert.Equal(t, []string{"123456789", "Serviço X", "1.500,00"}, rows[1])
	assert.Equal(t, "Total", rows[2][1])

	// Digit strings stay text cells
	cellType, err := f.GetCellType("Tabela_1", "A2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeSharedString, cellType)

	rows, err = f.GetRows("Tabela_2")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Observação"}}, rows)
}

func TestWriteCustomPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.xlsx")
	require.NoError(t, Write(path, []models.Table{{Rows: [][]string{{"a"}}}}, Options{SheetPrefix: "T"}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"T1"}, f.GetSheetList())
}

func TestWriteNoTables(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "gen.xlsx"), nil, Options{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
