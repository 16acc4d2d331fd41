package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractFieldsAccumulatesAcrossSheets(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "gen.xlsx",
		Sheets: []models.SheetData{
			sheetOf("Tabela_1",
				[]models.Cell{"Nº Contrato"},
				[]models.Cell{"123456"},
			),
			sheetOf("Tabela_2",
				[]models.Cell{"Conceito", "Valor"},
				[]models.Cell{"Serviço X", "2.000,10"},
			),
		},
	}

	res := ExtractFields(wb, DefaultScanOptions())

	assert.Equal(t, "gen.xlsx", res.Source)
	assert.True(t, res.Complete(models.PresenceTruthy))
	assert.Equal(t, int64(123456), *res.Contract)
	assert.Equal(t, "Serviço X", *res.Concept)
	assert.True(t, res.TotalValue.Value.Equal(decimal.RequireFromString("2000.1")))
}

func TestExtractFieldsStopsAfterCompleteSheet(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetOf("Tabela_1",
				[]models.Cell{"Contrato", "Conceito", "Valor"},
				[]models.Cell{"1", "A", "1,00"},
			),
			sheetOf("Tabela_2",
				[]models.Cell{"Contrato", "Conceito", "Valor"},
				[]models.Cell{"2", "B", "2,00"},
			),
		},
	}

	var loaded []int
	res, err := foldSheets(len(wb.Sheets), func(i int) (models.SheetData, error) {
		loaded = append(loaded, i)
		return wb.Sheets[i], nil
	}, models.ExtractionResult{}, DefaultScanOptions())

	require.NoError(t, err)
	assert.Equal(t, []int{0}, loaded)
	assert.Equal(t, int64(1), *res.Contract)
	assert.Equal(t, "A", *res.Concept)
}

func TestExtractFieldsPartial(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetOf("Tabela_1", []models.Cell{"Conceito"}, []models.Cell{"Só conceito"}),
		},
	}

	res := ExtractFields(wb, DefaultScanOptions())

	assert.Nil(t, res.Contract)
	assert.Nil(t, res.TotalValue)
	assert.Equal(t, "Só conceito", *res.Concept)
}

func TestFoldSheetsReturnsPartialOnLoadError(t *testing.T) {
	first := sheetOf("Tabela_1", []models.Cell{"Contrato"}, []models.Cell{"99"})
	loadErr := errors.New("boom")

	res, err := foldSheets(2, func(i int) (models.SheetData, error) {
		if i == 1 {
			return models.SheetData{}, loadErr
		}
		return first, nil
	}, models.ExtractionResult{}, DefaultScanOptions())

	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, int64(99), *res.Contract)
}

func TestExtractFieldsFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Tabela_1"))
	require.NoError(t, f.SetSheetRow("Tabela_1", "A1", &[]interface{}{"Contrato", "Conceito", "Valor"}))
	require.NoError(t, f.SetSheetRow("Tabela_1", "A2", &[]interface{}{"123456789", "Serviço X", "1.500,00"}))

	path := filepath.Join(t.TempDir(), "gen.xlsx")
	require.NoError(t, f.SaveAs(path))

	res := ExtractFieldsFile(path, DefaultScanOptions())

	assert.Equal(t, path, res.Source)
	require.True(t, res.Complete(models.PresenceTruthy))
	assert.Equal(t, int64(123456789), *res.Contract)
	assert.Equal(t, "Serviço X", *res.Concept)
	assert.True(t, res.TotalValue.Value.Equal(decimal.NewFromInt(1500)))
}

func TestExtractFieldsFileUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	res := ExtractFieldsFile(path, DefaultScanOptions())
	assert.Equal(t, models.ExtractionResult{Source: path}, res)

	_, err := ExtractFieldsFileErr(path, DefaultScanOptions())
	var readErr *models.WorkbookReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
}
