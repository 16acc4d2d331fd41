package parser

import (
	"path/filepath"
	"strconv"

	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook opens the workbook at path and extracts the cells of every sheet in workbook order.
func ReadWorkbook(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.WorkbookReadError{Path: path, Err: err}
	}
	defer f.Close()

	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractCells(f, sheetName)
		if err != nil {
			return nil, &models.WorkbookReadError{Path: path, SheetName: sheetName, Err: err}
		}
		wb.Sheets = append(wb.Sheets, models.SheetData{Name: sheetName, Rows: rows})
	}
	return wb, nil
}

// ExtractCells extracts typed cell data from a sheet.
// Rows run from row 1 to the last row holding data; empty rows in between are kept
// so that row 1 is always the header.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.CellRow, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(row))

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = typedValue(cellValue, cellType)
		}

		result = append(result, models.CellRow{R: rowNum, C: cells})
	}

	return result, nil
}

// typedValue converts a raw cell value according to the cell's stored type.
// String cells stay strings even when they look numeric.
func typedValue(raw string, cellType excelize.CellType) models.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
