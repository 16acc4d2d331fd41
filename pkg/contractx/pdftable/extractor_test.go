package pdftable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

func TestExtractTablesMissingFile(t *testing.T) {
	e := New(DefaultParams(), zerolog.Nop())

	_, err := e.ExtractTables(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, models.ErrNotFound)

	e.SkipValidation = true
	_, err = e.ExtractTables(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestValidateRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := New(DefaultParams(), zerolog.Nop()).Validate(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}
