package parser

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

// Keywords maps each field to the header substring that identifies its column.
type Keywords map[models.Field]string

// DefaultKeywords returns the Portuguese header keywords used by generated workbooks.
func DefaultKeywords() Keywords {
	return Keywords{
		models.FieldContract: "contrato",
		models.FieldConcept:  "conceito",
		models.FieldValue:    "valor",
	}
}

// ScanOptions configures field scanning.
type ScanOptions struct {
	// Keywords identifies field columns. Nil means DefaultKeywords.
	Keywords Keywords
	// Presence decides when a field counts as found. Empty means PresenceTruthy.
	Presence models.Presence
	// Logger receives per-row diagnostics.
	Logger zerolog.Logger
}

// DefaultScanOptions returns scan options with default keywords and truthy presence.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Keywords: DefaultKeywords(),
		Presence: models.PresenceTruthy,
		Logger:   zerolog.Nop(),
	}
}

func (o ScanOptions) keywords() Keywords {
	if o.Keywords == nil {
		return DefaultKeywords()
	}
	return o.Keywords
}

func (o ScanOptions) presence() models.Presence {
	if o.Presence == "" {
		return models.PresenceTruthy
	}
	return o.Presence
}

// ScanStats describes a single sheet scan.
type ScanStats struct {
	Sheet  string
	Header models.HeaderIndex
	// RowsRead counts the data rows visited.
	RowsRead int
	// Satisfied reports whether every field was present when the scan stopped.
	Satisfied bool
}

// ScanSheet scans the data rows of sheet top to bottom, filling fields of seed that are not yet present.
// It stops on the first row after which every field is present.
func ScanSheet(sheet models.SheetData, seed models.ExtractionResult, opts ScanOptions) (models.ExtractionResult, ScanStats) {
	log := opts.Logger.With().Str("sheet", sheet.Name).Logger()
	presence := opts.presence()

	res := seed
	idx := ResolveHeaders(sheet.Header(), opts.keywords())
	stats := ScanStats{Sheet: sheet.Name, Header: idx}

	log.Debug().
		Strs("header", NormalizeHeaders(sheet.Header())).
		Interface("columns", idx).
		Msg("header resolved")

	contractCol, hasContract := idx.Column(models.FieldContract)
	conceptCol, hasConcept := idx.Column(models.FieldConcept)
	valueCol, hasValue := idx.Column(models.FieldValue)

	for _, row := range sheet.DataRows() {
		stats.RowsRead++
		log.Debug().Int("row", row.R).Interface("cells", row.C).Msg("reading row")

		if hasContract && !res.Has(models.FieldContract, presence) {
			c := row.At(contractCol)
			if n, ok := NormalizeInteger(c); ok && models.Truthy(c) {
				res.Contract = &n
				log.Info().Int("row", row.R).Int64("contract", n).Msg("contract found")
			}
		}

		if hasConcept && !res.Has(models.FieldConcept, presence) {
			if c := row.At(conceptCol); models.Truthy(c) {
				concept := strings.TrimSpace(CellText(c))
				res.Concept = &concept
				log.Info().Int("row", row.R).Str("concept", concept).Msg("concept found")
			}
		}

		if hasValue && !res.Has(models.FieldValue, presence) {
			if c := row.At(valueCol); models.Truthy(c) {
				amount := NormalizeDecimal(c)
				res.TotalValue = &amount
				log.Info().
					Int("row", row.R).
					Str("value", amount.String()).
					Bool("parsed", amount.Parsed).
					Msg("value found")
			}
		}

		if res.Complete(presence) {
			stats.Satisfied = true
			log.Debug().Int("row", row.R).Msg("all fields found in sheet")
			break
		}
	}

	return res, stats
}
