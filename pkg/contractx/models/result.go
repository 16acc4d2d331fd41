package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names a semantic field located in a generated workbook.
type Field string

const (
	FieldContract Field = "contract"
	FieldConcept  Field = "concept"
	FieldValue    Field = "value"
)

// Fields lists the semantic fields in scan order.
var Fields = []Field{FieldContract, FieldConcept, FieldValue}

// Presence decides when a field counts as found.
type Presence string

const (
	// PresenceTruthy treats zero and empty values as not yet found, so a later row may replace them.
	PresenceTruthy Presence = "truthy"
	// PresenceNonNil locks a field as soon as any value is assigned.
	PresenceNonNil Presence = "nonnil"
)

// Amount is the outcome of decimal normalization of a cell.
type Amount struct {
	// Value is the parsed amount. Zero when Parsed is false.
	Value decimal.Decimal
	// Raw is the untouched cell value.
	Raw Cell
	// Parsed reports whether Value was parsed from Raw.
	Parsed bool
}

// Truthy reports whether the amount is non-zero, or for unparsed amounts whether the raw cell is truthy.
func (a Amount) Truthy() bool {
	if a.Parsed {
		return !a.Value.IsZero()
	}
	return Truthy(a.Raw)
}

func (a Amount) String() string {
	if a.Parsed {
		return a.Value.StringFixed(2)
	}
	return fmt.Sprint(a.Raw)
}

// MarshalJSON writes parsed amounts as numbers and unparsed ones as their raw value.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Parsed {
		return []byte(a.Value.String()), nil
	}
	return json.Marshal(a.Raw)
}

// ExtractionResult holds the fields located in a document.
// A field that is present under the active Presence policy is never overwritten.
type ExtractionResult struct {
	// Source identifies the document or workbook the fields came from.
	Source string `json:"source"`
	// Contract is the contract number.
	Contract *int64 `json:"contract"`
	// TotalValue is the total value, parsed when possible.
	TotalValue *Amount `json:"total_value"`
	// Concept is the description of the billed service.
	Concept *string `json:"concept"`
	// Method names how the fields were located (e.g. "tables", "label", "generic").
	Method string `json:"method,omitempty"`
}

// Has reports whether field f is present under policy p.
func (r ExtractionResult) Has(f Field, p Presence) bool {
	switch f {
	case FieldContract:
		if r.Contract == nil {
			return false
		}
		return p == PresenceNonNil || *r.Contract != 0
	case FieldConcept:
		if r.Concept == nil {
			return false
		}
		return p == PresenceNonNil || *r.Concept != ""
	case FieldValue:
		if r.TotalValue == nil {
			return false
		}
		return p == PresenceNonNil || r.TotalValue.Truthy()
	}
	return false
}

// Complete reports whether all three fields are present under policy p.
func (r ExtractionResult) Complete(p Presence) bool {
	for _, f := range Fields {
		if !r.Has(f, p) {
			return false
		}
	}
	return true
}
