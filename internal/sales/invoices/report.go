package invoices

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
)

// PrepareReport renders the invoice with English labels.
func (inv *Invoice) PrepareReport() []string {
	return inv.PrepareReportIn(language.English)
}

// PrepareReportIn renders the invoice: a header with the invoice number, one
// line per product and a summary with the count of distinct lines.
func (inv *Invoice) PrepareReportIn(lang language.Tag) []string {
	p := printerFor(lang)
	out := make([]string, 0, len(inv.lines)+2)
	out = append(out, p.Sprintf(labelHeader, strconv.FormatInt(inv.number, 10)))
	for _, line := range inv.lines {
		out = append(out, p.Sprintf(labelLine,
			line.Product.Name(),
			line.Product.Price().String(),
			strconv.Itoa(line.Quantity),
		))
	}
	out = append(out, p.Sprintf(labelSummary, strconv.Itoa(len(inv.lines))))
	return out
}

// Print writes the English report to w, one line each.
func (inv *Invoice) Print(w io.Writer) error {
	return inv.PrintIn(w, language.English)
}

// PrintIn writes the report in lang to w, one line each.
func (inv *Invoice) PrintIn(w io.Writer, lang language.Tag) error {
	for _, line := range inv.PrepareReportIn(lang) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("print invoice %d: %w", inv.number, err)
		}
	}
	return nil
}
