// Package pdftable reconstructs tables from the text layout of PDF pages.
package pdftable

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

// Extractor reads the tables of every page of a PDF file.
type Extractor struct {
	params Params
	logger zerolog.Logger
	// SkipValidation disables the structural pdfcpu check run before extraction.
	SkipValidation bool
}

// New creates an Extractor with the given detection parameters.
func New(params Params, logger zerolog.Logger) *Extractor {
	return &Extractor{params: params, logger: logger}
}

// Validate checks the PDF structure with pdfcpu and returns its page count.
func (e *Extractor) Validate(path string) (int, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("pdf %s: %w", path, models.ErrNotFound)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return 0, fmt.Errorf("invalid pdf %s: %w", path, err)
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("count pages of %s: %w", path, err)
	}
	return n, nil
}

// ExtractTables returns the tables found on each page of the PDF at path, in page order.
// Pages without tables are included with an empty table list.
func (e *Extractor) ExtractTables(path string) ([]models.Page, error) {
	if !e.SkipValidation {
		n, err := e.Validate(path)
		if err != nil {
			return nil, err
		}
		e.logger.Debug().Str("path", path).Int("pages", n).Msg("pdf validated")
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("pdf %s: %w", path, models.ErrNotFound)
	}

	e.logger.Info().Str("path", path).Msg("opening pdf")
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []models.Page
	total := 0
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		e.logger.Debug().Int("page", pageNum).Msg("extracting tables")
		grids, err := e.pageTables(r, pageNum)
		if err != nil {
			return nil, err
		}

		page := models.Page{Number: pageNum}
		for i, grid := range grids {
			page.Tables = append(page.Tables, models.Table{Page: pageNum, Rows: grid})
			e.logger.Info().Int("page", pageNum).Int("table", i+1).Int("rows", len(grid)).Msg("table extracted")
		}
		total += len(grids)
		pages = append(pages, page)
	}

	e.logger.Info().Int("tables", total).Msg("pdf tables extracted")
	return pages, nil
}

// pageTables detects the tables of one page. Content stream panics from the
// PDF reader are reported as errors.
func (e *Extractor) pageTables(r *pdf.Reader, pageNum int) (grids [][][]string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("read page %d: %v", pageNum, rec)
		}
	}()

	p := r.Page(pageNum)
	if p.V.IsNull() {
		return nil, nil
	}
	return detectTables(p.Content().Text, e.params), nil
}

// ExtractLines returns the text lines of each page of the PDF at path, top to bottom.
// Cells of a line are joined by a single space.
func (e *Extractor) ExtractLines(path string) ([][]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("pdf %s: %w", path, models.ErrNotFound)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([][]string, 0, r.NumPage())
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		lines, err := e.pageLines(r, pageNum)
		if err != nil {
			return nil, err
		}
		pages = append(pages, lines)
	}
	return pages, nil
}

func (e *Extractor) pageLines(r *pdf.Reader, pageNum int) (lines []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("read page %d: %v", pageNum, rec)
		}
	}()

	p := r.Page(pageNum)
	if p.V.IsNull() {
		return nil, nil
	}
	return Lines(p.Content().Text, e.params), nil
}

// Lines groups glyphs into text lines, top to bottom.
func Lines(texts []pdf.Text, p Params) []string {
	var out []string
	for _, l := range groupLines(texts, p.RowTolerance) {
		cells := splitCells(l, p)
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = c.text
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out
}

// Tables flattens pages into their tables, in page order.
func Tables(pages []models.Page) []models.Table {
	var out []models.Table
	for _, p := range pages {
		out = append(out, p.Tables...)
	}
	return out
}
