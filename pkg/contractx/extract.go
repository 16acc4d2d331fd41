package contractx

import (
	"fmt"

	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/ukaji3/contractx-go/pkg/contractx/parser"
	"github.com/ukaji3/contractx-go/pkg/contractx/pdftable"
	"github.com/ukaji3/contractx-go/pkg/contractx/reference"
	"github.com/ukaji3/contractx-go/pkg/contractx/textscan"
	"github.com/ukaji3/contractx-go/pkg/contractx/workbook"
)

// TableSource yields the tables of each page of a PDF.
type TableSource interface {
	ExtractTables(path string) ([]models.Page, error)
}

// FieldExtractor locates the contract, value and concept fields of a PDF.
type FieldExtractor interface {
	ExtractFields(pdfPath string) (models.ExtractionResult, error)
}

// TablePipeline rebuilds PDF tables into a generated workbook and scans it for fields.
type TablePipeline struct {
	Source TableSource
	opts   Options
}

// NewTablePipeline creates a TablePipeline reading tables from src.
func NewTablePipeline(src TableSource, opts Options) *TablePipeline {
	return &TablePipeline{Source: src, opts: opts}
}

// WorkbookPath returns the path of the generated workbook.
func (p *TablePipeline) WorkbookPath() string {
	return p.opts.workbookPath()
}

// Convert writes every table of the PDF to the generated workbook, one sheet per table.
func (p *TablePipeline) Convert(pdfPath string) error {
	pages, err := p.Source.ExtractTables(pdfPath)
	if err != nil {
		return err
	}
	return workbook.Write(p.WorkbookPath(), pdftable.Tables(pages), p.opts.WorkbookOptions())
}

// ExtractFields converts the PDF and scans the generated workbook.
// Workbook read failures yield a partial result, not an error.
func (p *TablePipeline) ExtractFields(pdfPath string) (models.ExtractionResult, error) {
	if err := p.Convert(pdfPath); err != nil {
		return models.ExtractionResult{Source: pdfPath}, stageErr("convert", err)
	}
	res := parser.ExtractFieldsFile(p.WorkbookPath(), p.opts.ScanOptions())
	res.Method = string(StrategyTables)
	return res, nil
}

// NewFieldExtractor returns the FieldExtractor for opts.Strategy, reading PDFs with pdftable.
func NewFieldExtractor(opts Options) (FieldExtractor, error) {
	pdfs := pdftable.New(opts.tableParams(), opts.Logger)
	pdfs.SkipValidation = opts.SkipValidation

	switch opts.Strategy {
	case StrategyTables, "":
		return NewTablePipeline(pdfs, opts), nil
	case StrategyText:
		return textscan.New(pdfs, textscan.Options{
			Presence: opts.Presence,
			Logger:   opts.Logger,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be tables or text)", ErrUnknownStrategy, opts.Strategy)
	}
}

// Run extracts the fields of the PDF at pdfPath and looks the contract up in the reference workbook.
// The returned report holds whatever was found even when an error is returned.
func Run(pdfPath, referencePath string, opts Options) (*models.Report, error) {
	fe, err := NewFieldExtractor(opts)
	if err != nil {
		return nil, err
	}
	return RunWith(fe, pdfPath, referencePath, opts)
}

// RunWith is Run with an explicit FieldExtractor.
func RunWith(fe FieldExtractor, pdfPath, referencePath string, opts Options) (*models.Report, error) {
	column := opts.Column
	if column == "" {
		column = models.ColContract
	}
	report := &models.Report{Column: column}

	fields, err := fe.ExtractFields(pdfPath)
	report.Fields = fields
	if err != nil {
		return report, stageErr("extract", err)
	}

	m := reference.NewMatcher(referencePath, reference.Options{Logger: opts.Logger})
	if err := m.Load(); err != nil {
		return report, stageErr("load", err)
	}

	if fields.Contract == nil {
		return report, stageErr("match", fmt.Errorf("no contract number extracted from %s: %w", pdfPath, ErrNotFound))
	}
	records, err := m.FindByContract(*fields.Contract, column)
	if err != nil {
		return report, stageErr("match", err)
	}
	report.Records = records
	return report, nil
}
