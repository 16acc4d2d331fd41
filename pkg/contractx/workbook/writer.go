// Package workbook writes the generated workbook that stages PDF tables for field extraction.
package workbook

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetPrefix names generated sheets Tabela_1, Tabela_2, ...
const DefaultSheetPrefix = "Tabela_"

// Options configures workbook generation.
type Options struct {
	// SheetPrefix is prepended to the 1-based table number. Empty means DefaultSheetPrefix.
	SheetPrefix string
	Logger      zerolog.Logger
}

// SheetName returns the name of the sheet holding the n-th table (1-based).
func (o Options) SheetName(n int) string {
	prefix := o.SheetPrefix
	if prefix == "" {
		prefix = DefaultSheetPrefix
	}
	return fmt.Sprintf("%s%d", prefix, n)
}

// Write saves tables to path, one sheet per table in order, rows copied verbatim.
// Empty cell text is written as an empty cell. The default sheet is not kept.
func Write(path string, tables []models.Table, opts Options) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to write to %s: %w", path, models.ErrNotFound)
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, table := range tables {
		name := opts.SheetName(i + 1)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", defaultSheet, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}

		if err := writeRows(f, name, table.Rows); err != nil {
			return fmt.Errorf("write sheet %s: %w", name, err)
		}
		opts.Logger.Info().Str("sheet", name).Int("rows", len(table.Rows)).Int("page", table.Page).Msg("table saved")
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	opts.Logger.Info().Str("path", path).Int("sheets", len(tables)).Msg("workbook saved")
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for r, row := range rows {
		cells := make([]interface{}, len(row))
		for c, text := range row {
			if text != "" {
				cells[c] = text
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
