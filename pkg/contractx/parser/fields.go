package parser

import (
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/xuri/excelize/v2"
)

// sheetLoader returns the i-th sheet of a workbook.
type sheetLoader func(i int) (models.SheetData, error)

// foldSheets folds ScanSheet over n sheets in order, starting from seed.
// Sheets are loaded lazily and the fold stops once every field is present.
// On a load error the result accumulated so far is returned with the error.
func foldSheets(n int, load sheetLoader, seed models.ExtractionResult, opts ScanOptions) (models.ExtractionResult, error) {
	acc := seed
	for i := 0; i < n; i++ {
		if acc.Complete(opts.presence()) {
			break
		}
		sheet, err := load(i)
		if err != nil {
			return acc, err
		}
		acc, _ = ScanSheet(sheet, acc, opts)
	}
	if acc.Complete(opts.presence()) {
		opts.Logger.Info().Msg("all fields found")
	}
	return acc, nil
}

// ExtractFields locates the contract, concept and value fields across the sheets of wb.
// Fields found in earlier sheets are kept; the result may be partial.
func ExtractFields(wb *models.WorkbookData, opts ScanOptions) models.ExtractionResult {
	seed := models.ExtractionResult{Source: wb.BookName}
	res, _ := foldSheets(len(wb.Sheets), func(i int) (models.SheetData, error) {
		return wb.Sheets[i], nil
	}, seed, opts)
	return res
}

// ExtractFieldsFile locates fields in the workbook at path.
// Read failures are logged and whatever was found before the failure is returned.
func ExtractFieldsFile(path string, opts ScanOptions) models.ExtractionResult {
	res, err := ExtractFieldsFileErr(path, opts)
	if err != nil {
		opts.Logger.Warn().Err(err).Str("path", path).Msg("workbook read failed, returning partial result")
	}
	opts.Logger.Info().Interface("result", res).Msg("extraction finished")
	return res
}

// ExtractFieldsFileErr is ExtractFieldsFile returning the *models.WorkbookReadError instead of logging it.
func ExtractFieldsFileErr(path string, opts ScanOptions) (models.ExtractionResult, error) {
	seed := models.ExtractionResult{Source: path}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return seed, &models.WorkbookReadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	return foldSheets(len(sheetList), func(i int) (models.SheetData, error) {
		name := sheetList[i]
		opts.Logger.Debug().Str("sheet", name).Msg("reading sheet")
		rows, err := ExtractCells(f, name)
		if err != nil {
			return models.SheetData{}, &models.WorkbookReadError{Path: path, SheetName: name, Err: err}
		}
		return models.SheetData{Name: name, Rows: rows}, nil
	}, seed, opts)
}
