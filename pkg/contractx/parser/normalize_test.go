package parser

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

func TestNormalizeInteger(t *testing.T) {
	tests := []struct {
		name   string
		input  models.Cell
		want   int64
		wantOK bool
	}{
		{"leading zeros", "00123", 123, true},
		{"trailing letter", "12a", 0, false},
		{"int cell", int64(42), 42, true},
		{"integral float cell", float64(123), 0, false},
		{"negative", "-5", 0, false},
		{"surrounding space", " 12", 0, false},
		{"decimal", "1.5", 0, false},
		{"empty", "", 0, false},
		{"nil", nil, 0, false},
		{"non ascii digits", "١٢٣", 0, false},
		{"overflow", "99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeInteger(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		name       string
		input      models.Cell
		want       string
		wantParsed bool
	}{
		{"brazilian thousands", "1.234,56", "1234.56", true},
		{"quoted", `"1.500,00"`, "1500", true},
		{"plain integer", "42", "42", true},
		{"int cell", int64(7), "7", true},
		{"padded", " 3,5 ", "3.5", true},
		{"negative", "-10,25", "-10.25", true},
		{"zero", "0,00", "0", true},
		{"text", "abc", "", false},
		{"currency prefix", "R$ 10,00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDecimal(tt.input)
			require.Equal(t, tt.wantParsed, got.Parsed)
			assert.Equal(t, tt.input, got.Raw)
			if tt.wantParsed {
				assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.want)),
					"got %s, want %s", got.Value, tt.want)
			}
		})
	}
}

func TestNormalizeDecimalKeepsUnparsedValue(t *testing.T) {
	got := NormalizeDecimal("abc")
	assert.False(t, got.Parsed)
	assert.Equal(t, "abc", got.Raw)
	assert.True(t, got.Truthy())
	assert.Equal(t, "abc", got.String())
}

func TestNormalizeDecimalFloatCellDropsPoint(t *testing.T) {
	// Numeric cells go through the same text rewrite, so the point is read as a thousands separator.
	got := NormalizeDecimal(1500.5)
	require.True(t, got.Parsed)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(15005)))
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   models.Cell
		want    int64
		wantErr bool
	}{
		{"int", int64(12345), 12345, false},
		{"string", "12345", 12345, false},
		{"signed string", "-7", -7, false},
		{"padded string", " 8 ", 8, false},
		{"float truncates", 12.9, 12, false},
		{"bool", true, 1, false},
		{"nil", nil, 0, true},
		{"decimal string", "12.0", 0, true},
		{"text", "abc", 0, true},
		{"nan", math.NaN(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		input models.Cell
		want  string
	}{
		{nil, ""},
		{"x", "x"},
		{int64(5), "5"},
		{1500.0, "1500.0"},
		{2.5, "2.5"},
		{true, "True"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CellText(tt.input), "CellText(%#v)", tt.input)
	}
}
