// Package textscan locates contract fields in PDF text by searching for labels line by line.
package textscan

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

// Methods reported in ExtractionResult.Method.
const (
	MethodLabel   = "label"
	MethodGeneric = "generic"
)

// Pattern pairs the label introducing a field with the expression capturing its value.
type Pattern struct {
	Label string
	Regex *regexp.Regexp
}

// DefaultPatterns returns the label patterns for Portuguese invoices.
func DefaultPatterns() map[models.Field]Pattern {
	return map[models.Field]Pattern{
		models.FieldContract: {
			Label: "nº do contrato",
			Regex: regexp.MustCompile(`\b\d{8,12}\b`),
		},
		models.FieldValue: {
			Label: "valor total",
			Regex: regexp.MustCompile(`(?i)(?:R\$)?\s*(\d{1,3}(?:\.?\d{3})*,\d{2})`),
		},
		models.FieldConcept: {
			Label: "conceito",
			Regex: regexp.MustCompile(`(?i)conceito\s*\d+\s*(.+)`),
		},
	}
}

// LineSource yields the text lines of each page of a PDF.
type LineSource interface {
	ExtractLines(path string) ([][]string, error)
}

// Options configures label scanning.
type Options struct {
	// Patterns overrides DefaultPatterns when non-nil.
	Patterns map[models.Field]Pattern
	// Presence decides when a field counts as found. Empty means PresenceTruthy.
	Presence models.Presence
	Logger   zerolog.Logger
}

// Extractor locates fields from page text.
type Extractor struct {
	src      LineSource
	patterns map[models.Field]Pattern
	presence models.Presence
	logger   zerolog.Logger
}

// New creates an Extractor reading page lines from src.
func New(src LineSource, opts Options) *Extractor {
	e := &Extractor{
		src:      src,
		patterns: opts.Patterns,
		presence: opts.Presence,
		logger:   opts.Logger,
	}
	if e.patterns == nil {
		e.patterns = DefaultPatterns()
	}
	if e.presence == "" {
		e.presence = models.PresenceTruthy
	}
	return e
}

// ExtractFields scans the PDF at path for labelled fields.
// When no labelled contract is found, the first contract-like number in the document is used.
// It fails with ErrNotFound when no contract number is found at all.
func (e *Extractor) ExtractFields(path string) (models.ExtractionResult, error) {
	pages, err := e.src.ExtractLines(path)
	if err != nil {
		return models.ExtractionResult{Source: filepath.Base(path)}, err
	}

	res := e.ScanPages(pages)
	res.Source = filepath.Base(path)
	if res.Contract == nil {
		return res, fmt.Errorf("no contract found in %s: %w", res.Source, models.ErrNotFound)
	}
	return res, nil
}

// ScanPages applies label search page by page, then the generic contract search over every page.
func (e *Extractor) ScanPages(pages [][]string) models.ExtractionResult {
	var res models.ExtractionResult

	for _, lines := range pages {
		if !res.Has(models.FieldContract, e.presence) {
			if n, ok := e.contractByLabel(lines); ok {
				res.Contract = &n
				e.logger.Info().Int64("contract", n).Str("method", MethodLabel).Msg("contract found")
			}
		}
		if !res.Has(models.FieldValue, e.presence) {
			if a, ok := e.valueByLabel(lines); ok {
				res.TotalValue = &a
				e.logger.Info().Str("value", a.String()).Msg("value found")
			}
		}
		if !res.Has(models.FieldConcept, e.presence) {
			if s, ok := e.conceptByLabel(lines); ok {
				res.Concept = &s
				e.logger.Info().Str("concept", s).Msg("concept found")
			}
		}
	}

	if res.Has(models.FieldContract, e.presence) {
		res.Method = MethodLabel
		return res
	}

	res.Method = MethodGeneric
	if n, ok := e.contractGeneric(pages); ok {
		res.Contract = &n
		e.logger.Info().Int64("contract", n).Str("method", MethodGeneric).Msg("contract found")
	}
	return res
}

// labelLines returns the indexes of lines containing the label of f.
func (e *Extractor) labelLines(lines []string, f models.Field) []int {
	label := strings.ToLower(e.patterns[f].Label)
	var idx []int
	for i, l := range lines {
		if strings.Contains(strings.ToLower(strings.TrimSpace(l)), label) {
			e.logger.Debug().Str("label", label).Int("line", i+1).Msg("label found")
			idx = append(idx, i)
		}
	}
	return idx
}

// nextNonEmpty returns the first non-blank line after i, trimmed.
func nextNonEmpty(lines []string, i int) (string, bool) {
	for j := i + 1; j < len(lines); j++ {
		if s := strings.TrimSpace(lines[j]); s != "" {
			return s, true
		}
	}
	return "", false
}

func (e *Extractor) contractByLabel(lines []string) (int64, bool) {
	re := e.patterns[models.FieldContract].Regex
	for _, i := range e.labelLines(lines, models.FieldContract) {
		if m := re.FindString(lines[i]); m != "" {
			return parseContract(m)
		}
		if next, ok := nextNonEmpty(lines, i); ok {
			if m := re.FindString(next); m != "" {
				return parseContract(m)
			}
			return 0, false
		}
	}
	return 0, false
}

func (e *Extractor) valueByLabel(lines []string) (models.Amount, bool) {
	re := e.patterns[models.FieldValue].Regex
	for _, i := range e.labelLines(lines, models.FieldValue) {
		if m := re.FindStringSubmatch(lines[i]); m != nil {
			return parseAmount(m[len(m)-1]), true
		}
		if next, ok := nextNonEmpty(lines, i); ok {
			s := strings.ReplaceAll(next, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
			s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
			if d, err := decimal.NewFromString(s); err == nil {
				return models.Amount{Value: d, Raw: next, Parsed: true}, true
			}
			return models.Amount{Raw: next}, true
		}
	}
	return models.Amount{}, false
}

// conceptByLabel returns the line two below the first concept label.
func (e *Extractor) conceptByLabel(lines []string) (string, bool) {
	idx := e.labelLines(lines, models.FieldConcept)
	if len(idx) == 0 {
		return "", false
	}
	i := idx[0]
	if i+2 < len(lines) {
		if s := strings.TrimSpace(lines[i+2]); s != "" {
			return s, true
		}
	}
	return "", false
}

func (e *Extractor) contractGeneric(pages [][]string) (int64, bool) {
	re := e.patterns[models.FieldContract].Regex
	for _, lines := range pages {
		if m := re.FindString(strings.Join(lines, "\n")); m != "" {
			return parseContract(m)
		}
	}
	return 0, false
}

func parseContract(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseAmount(s string) models.Amount {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", "."))
	if err != nil {
		return models.Amount{Raw: s}
	}
	return models.Amount{Value: d, Raw: s, Parsed: true}
}
