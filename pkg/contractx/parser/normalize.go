package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

var errEmptyCell = errors.New("cell is empty")

// CellText renders a cell as text. Integral floats keep a trailing ".0"
// so that they never read as a digit string.
func CellText(c models.Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") {
			s += ".0"
		}
		return s
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(v)
	}
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeInteger returns the integer held by c when its text form is all ASCII digits.
// No sign, decimal point or surrounding space is accepted.
func NormalizeInteger(c models.Cell) (int64, bool) {
	s := CellText(c)
	if !IsDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NormalizeDecimal parses a Brazilian-formatted number ("1.234,56").
// Quotes and thousands separators are dropped and the decimal comma becomes a point.
// When parsing fails the returned Amount carries the untouched cell and Parsed is false.
func NormalizeDecimal(c models.Cell) models.Amount {
	s := CellText(c)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return models.Amount{Raw: c}
	}
	return models.Amount{Value: d, Raw: c, Parsed: true}
}

// ToInt converts a cell to an integer, failing on empty cells and non-integer text.
// Floats are truncated toward zero and booleans become 0 or 1.
func ToInt(c models.Cell) (int64, error) {
	switch v := c.(type) {
	case nil:
		return 0, errEmptyCell
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("cannot convert %v to integer", v)
		}
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q: %w", v, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported cell type %T", c)
	}
}
