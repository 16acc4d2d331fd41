// Package output serializes run reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukaji3/contractx-go/pkg/contractx/models"
)

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteSummary writes a human-readable summary of report to w.
func WriteSummary(w io.Writer, report *models.Report) error {
	if report == nil {
		return nil
	}
	f := report.Fields

	if f.Contract != nil {
		fmt.Fprintf(w, "Contrato: %d\n", *f.Contract)
	} else {
		fmt.Fprintln(w, "Contrato: não encontrado")
	}
	if f.TotalValue != nil {
		fmt.Fprintf(w, "Valor Total: R$ %s\n", f.TotalValue)
	} else {
		fmt.Fprintln(w, "Valor Total: não encontrado")
	}
	if f.Concept != nil {
		fmt.Fprintf(w, "Conceito: %s\n", *f.Concept)
	} else {
		fmt.Fprintln(w, "Conceito: não encontrado")
	}

	if len(report.Records) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma nota fiscal encontrada")
		return err
	}

	fmt.Fprintf(w, "\nNotas fiscais (%d):\n", len(report.Records))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range models.InvoiceColumns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for _, r := range report.Records {
		for i, c := range models.InvoiceColumns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, *r.Attr(c))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
