package contractx

import (
	"errors"

	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

// ErrNotFound indicates a missing input file or a contract without matching records.
var ErrNotFound = models.ErrNotFound

// ErrInvalidState indicates a lookup before the reference workbook was loaded.
var ErrInvalidState = models.ErrInvalidState

// ErrInvalidColumn indicates a search column absent from the reference header.
var ErrInvalidColumn = models.ErrInvalidColumn

// ErrUnknownStrategy indicates an unsupported extraction strategy.
var ErrUnknownStrategy = errors.New("unknown strategy")

type (
	InvalidColumnError = models.InvalidColumnError
	RowConversionError = models.RowConversionError
	WorkbookReadError  = models.WorkbookReadError
)

// StageError represents a failure in one stage of a run.
type StageError struct {
	Stage string // "convert", "extract", "load", "match"
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
