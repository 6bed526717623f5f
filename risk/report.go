package risk

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport prints a plain-text summary of r with numbers formatted for
// tag.
func WriteReport(w io.Writer, tag language.Tag, m Model, r Result) error {
	p := message.NewPrinter(tag)

	if _, err := p.Fprintf(w, "%s: %s (%.1f%%)\n", m.Title(), r.Level.Label(), r.Probability*100); err != nil {
		return err
	}
	if r.Category != "" {
		if _, err := p.Fprintf(w, "BMI %.1f, %s\n", r.BMI, r.Category); err != nil {
			return err
		}
	}
	for _, f := range r.Factors {
		sign := "-"
		if f.Increases() {
			sign = "+"
		}
		if _, err := p.Fprintf(w, "  %s %-28s %.2f\n", sign, f.Name, f.Impact); err != nil {
			return err
		}
	}
	return nil
}
