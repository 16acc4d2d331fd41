// Package contractx extracts contract fields from tabular PDFs and matches them against a reference workbook.
package contractx

import (
	"github.com/rs/zerolog"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/ukaji3/contractx-go/pkg/contractx/parser"
	"github.com/ukaji3/contractx-go/pkg/contractx/pdftable"
	"github.com/ukaji3/contractx-go/pkg/contractx/workbook"
)

// Strategy selects how fields are located in a PDF.
type Strategy string

const (
	// StrategyTables rebuilds PDF tables into a workbook and scans its column headers.
	StrategyTables Strategy = "tables"
	// StrategyText searches the PDF text for field labels.
	StrategyText Strategy = "text"
)

// DefaultWorkbookPath is where the generated workbook is written when none is configured.
const DefaultWorkbookPath = "temp_contrato.xlsx"

// Options configures extraction and matching.
type Options struct {
	// Strategy specifies the field extraction strategy (tables, text).
	Strategy Strategy
	// WorkbookPath is the generated workbook written by the tables strategy.
	WorkbookPath string
	// SheetPrefix names generated sheets. Empty means "Tabela_".
	SheetPrefix string
	// Column is the reference column searched for the contract number. Empty means CONTRATO.
	Column string
	// Presence decides when a field counts as found.
	Presence models.Presence
	// Keywords overrides the header keywords of the tables strategy.
	Keywords parser.Keywords
	// Table holds the PDF table detection parameters.
	Table pdftable.Params
	// SkipValidation disables the structural PDF check before table extraction.
	SkipValidation bool
	Logger         zerolog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Strategy:     StrategyTables,
		WorkbookPath: DefaultWorkbookPath,
		Column:       models.ColContract,
		Presence:     models.PresenceTruthy,
		Keywords:     parser.DefaultKeywords(),
		Table:        pdftable.DefaultParams(),
		Logger:       zerolog.Nop(),
	}
}

// ScanOptions returns the options for scanning the generated workbook.
func (o Options) ScanOptions() parser.ScanOptions {
	return parser.ScanOptions{
		Keywords: o.Keywords,
		Presence: o.Presence,
		Logger:   o.Logger,
	}
}

// WorkbookOptions returns the options for writing the generated workbook.
func (o Options) WorkbookOptions() workbook.Options {
	return workbook.Options{
		SheetPrefix: o.SheetPrefix,
		Logger:      o.Logger,
	}
}

func (o Options) workbookPath() string {
	if o.WorkbookPath == "" {
		return DefaultWorkbookPath
	}
	return o.WorkbookPath
}

func (o Options) tableParams() pdftable.Params {
	if o.Table == (pdftable.Params{}) {
		return pdftable.DefaultParams()
	}
	return o.Table
}
