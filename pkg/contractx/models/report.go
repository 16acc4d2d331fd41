package models

// Report is the outcome of a full run: the fields located in the PDF and the matching reference records.
type Report struct {
	Fields  ExtractionResult `json:"fields"`
	Column  string           `json:"column,omitempty"`
	Records []InvoiceRecord  `json:"records"`
}
