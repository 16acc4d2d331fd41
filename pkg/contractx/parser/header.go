package parser

import (
	"strings"

	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader returns the trimmed, lower-cased text of a header cell.
// Empty, zero and false cells normalize to "".
func NormalizeHeader(c models.Cell) string {
	if !models.Truthy(c) {
		return ""
	}
	s := strings.TrimSpace(norm.NFC.String(CellText(c)))
	return cases.Lower(language.BrazilianPortuguese).String(s)
}

// NormalizeHeaders normalizes every cell of a header row.
func NormalizeHeaders(header []models.Cell) []string {
	out := make([]string, len(header))
	for i, c := range header {
		out[i] = NormalizeHeader(c)
	}
	return out
}

// ResolveHeader returns the index of the leftmost header cell containing keyword.
func ResolveHeader(header []models.Cell, keyword string) (int, bool) {
	return resolveNormalized(NormalizeHeaders(header), keyword)
}

// ResolveHeaders resolves every field of keywords against a header row.
// Fields are resolved independently and may share a column.
func ResolveHeaders(header []models.Cell, keywords Keywords) models.HeaderIndex {
	normalized := NormalizeHeaders(header)
	idx := make(models.HeaderIndex, len(keywords))
	for field, keyword := range keywords {
		if col, ok := resolveNormalized(normalized, keyword); ok {
			idx[field] = col
		}
	}
	return idx
}

func resolveNormalized(normalized []string, keyword string) (int, bool) {
	keyword = NormalizeHeader(keyword)
	for i, h := range normalized {
		if strings.Contains(h, keyword) {
			return i, true
		}
	}
	return 0, false
}
