package textscan

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

type stubLines struct {
	pages [][]string
	err   error
}

func (s stubLines) ExtractLines(string) ([][]string, error) {
	return s.pages, s.err
}

func TestExtractFieldsByLabel(t *testing.T) {
	src := stubLines{pages: [][]string{
		{
			"FATURA DE SERVIÇOS",
			"Nº do Contrato: 4500123456",
			"Conceito",
			"Código",
			"Manutenção preventiva",
			"Valor Total: R$ 12.345,67",
		},
	}}

	res, err := New(src, Options{}).ExtractFields("/tmp/fatura.pdf")
	require.NoError(t, err)

	assert.Equal(t, "fatura.pdf", res.Source)
	assert.Equal(t, MethodLabel, res.Method)
	assert.Equal(t, int64(4500123456), *res.Contract)
	assert.Equal(t, "Manutenção preventiva", *res.Concept)
	assert.True(t, res.TotalValue.Value.Equal(decimal.RequireFromString("12345.67")))
}

func TestExtractFieldsNextLineFallback(t *testing.T) {
	src := stubLines{pages: [][]string{
		{"Nº do contrato", "", "  123456789  ", "Valor total", "1.000,50"},
		{"Valor total", "9,99"},
	}}

	res, err := New(src, Options{}).ExtractFields("doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, int64(123456789), *res.Contract)
	assert.True(t, res.TotalValue.Value.Equal(decimal.RequireFromString("1000.5")), "first page wins")
	assert.Nil(t, res.Concept)
}

func TestExtractFieldsUnparsedValue(t *testing.T) {
	src := stubLines{pages: [][]string{
		{"Nº do contrato 12345678", "Valor total", "a definir"},
	}}

	res, err := New(src, Options{}).ExtractFields("doc.pdf")
	require.NoError(t, err)
	require.NotNil(t, res.TotalValue)
	assert.False(t, res.TotalValue.Parsed)
	assert.Equal(t, "a definir", res.TotalValue.Raw)
}

func TestExtractFieldsGenericFallback(t *testing.T) {
	src := stubLines{pages: [][]string{
		{"Sem rótulo aqui"},
		{"Referência 987654321 emitida"},
	}}

	res, err := New(src, Options{}).ExtractFields("doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodGeneric, res.Method)
	assert.Equal(t, int64(987654321), *res.Contract)
}

func TestExtractFieldsNoContract(t *testing.T) {
	src := stubLines{pages: [][]string{{"Conceito", "", "Texto"}}}

	res, err := New(src, Options{}).ExtractFields("doc.pdf")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, "Texto", *res.Concept)
}

func TestExtractFieldsSourceError(t *testing.T) {
	srcErr := errors.New("broken pdf")
	_, err := New(stubLines{err: srcErr}, Options{}).ExtractFields("doc.pdf")
	assert.ErrorIs(t, err, srcErr)
}

func TestConceptNeedsLineTwoBelow(t *testing.T) {
	e := New(stubLines{}, Options{})

	_, ok := e.conceptByLabel([]string{"Conceito", "x"})
	assert.False(t, ok)

	s, ok := e.conceptByLabel([]string{"CONCEITO", "01", " Frete ", "Conceito", "a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "Frete", s)
}
