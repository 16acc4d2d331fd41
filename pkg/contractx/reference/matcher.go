// Package reference looks up invoice attributes by contract number in a reference workbook.
package reference

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/ukaji3/contractx-go/pkg/contractx/parser"
	"github.com/xuri/excelize/v2"
)

// Options configures reference workbook loading.
type Options struct {
	Logger zerolog.Logger
}

// Workbook is the active sheet of a loaded reference workbook.
type Workbook struct {
	path    string
	sheet   string
	columns []string
	// attrCol maps a column name to its last position, so a repeated name reads from the rightmost column.
	attrCol map[string]int
	rows    []models.CellRow
	logger  zerolog.Logger
}

// Load reads the active sheet of the workbook at path. Row 1 names the columns.
func Load(path string, opts Options) (*Workbook, error) {
	opts.Logger.Info().Str("file", filepath.Base(path)).Msg("loading reference workbook")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reference workbook %s: %w", path, models.ErrNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.WorkbookReadError{Path: path, Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := parser.ExtractCells(f, sheet)
	if err != nil {
		return nil, &models.WorkbookReadError{Path: path, SheetName: sheet, Err: err}
	}

	w := &Workbook{
		path:    path,
		sheet:   sheet,
		columns: []string{},
		attrCol: map[string]int{},
		logger:  opts.Logger,
	}
	if len(rows) > 0 {
		for i, c := range rows[0].C {
			name := columnName(c)
			w.columns = append(w.columns, name)
			w.attrCol[name] = i
		}
		w.rows = rows[1:]
	}

	opts.Logger.Info().
		Str("sheet", sheet).
		Strs("columns", w.columns).
		Int("rows", len(w.rows)).
		Msg("reference workbook loaded")
	return w, nil
}

func columnName(c models.Cell) string {
	if s, ok := c.(string); ok {
		return strings.TrimSpace(s)
	}
	return parser.CellText(c)
}

// Path returns the file the workbook was loaded from.
func (w *Workbook) Path() string { return w.path }

// Columns returns the column names of the header row.
func (w *Workbook) Columns() []string {
	return slices.Clone(w.columns)
}

// FindByContract returns the records whose column value is a digit string equal to contract,
// in sheet order. An empty column means CONTRATO.
// Rows whose attributes fail integer conversion are logged and skipped.
func (w *Workbook) FindByContract(contract int64, column string) ([]models.InvoiceRecord, error) {
	if w == nil || w.columns == nil {
		return nil, fmt.Errorf("reference workbook not loaded: %w", models.ErrInvalidState)
	}
	if column == "" {
		column = models.ColContract
	}

	w.logger.Info().Int64("contract", contract).Str("column", column).Msg("searching contract")
	colIdx := slices.Index(w.columns, column)
	if colIdx < 0 {
		return nil, &models.InvalidColumnError{Column: column, Valid: w.Columns()}
	}

	var records []models.InvoiceRecord
	for _, row := range w.rows {
		n, ok := parser.NormalizeInteger(row.At(colIdx))
		if !ok || n != contract {
			continue
		}
		rec, err := w.record(row)
		if err != nil {
			w.logger.Warn().Err(err).Int("row", row.R).Msg("skipping row")
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no records for contract %d: %w", contract, models.ErrNotFound)
	}
	w.logger.Info().Int64("contract", contract).Int("records", len(records)).Msg("contract found")
	return records, nil
}

// record converts a row into an InvoiceRecord. Attributes whose column is absent stay 0.
func (w *Workbook) record(row models.CellRow) (models.InvoiceRecord, error) {
	var rec models.InvoiceRecord
	for _, label := range models.InvoiceColumns {
		idx, ok := w.attrCol[label]
		if !ok {
			continue
		}
		v, err := parser.ToInt(row.At(idx))
		if err != nil {
			return rec, &models.RowConversionError{Row: row.R, Column: label, Value: row.At(idx), Err: err}
		}
		*rec.Attr(label) = v
	}
	return rec, nil
}

// Matcher loads a reference workbook on demand and answers contract lookups against it.
type Matcher struct {
	path string
	opts Options
	wb   *Workbook
}

// NewMatcher creates a Matcher for the workbook at path. Call Load before FindByContract.
func NewMatcher(path string, opts Options) *Matcher {
	return &Matcher{path: path, opts: opts}
}

// Load reads the reference workbook.
func (m *Matcher) Load() error {
	wb, err := Load(m.path, m.opts)
	if err != nil {
		return err
	}
	m.wb = wb
	return nil
}

// Columns returns the loaded column names, or nil before Load.
func (m *Matcher) Columns() []string {
	if m.wb == nil {
		return nil
	}
	return m.wb.Columns()
}

// FindByContract delegates to the loaded Workbook. It fails with ErrInvalidState before Load.
func (m *Matcher) FindByContract(contract int64, column string) ([]models.InvoiceRecord, error) {
	return m.wb.FindByContract(contract, column)
}
