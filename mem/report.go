package mem

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport writes a human-readable accounting table for every registered
// allocator: live bytes, high watermark and physically reserved bytes, with
// grouped digits for readability.
func (r *Registry) WriteReport(w io.Writer) error {
	p := message.NewPrinter(language.English)

	if _, err := fmt.Fprintf(w, "%-24s %16s %16s %16s\n",
		"ALLOCATOR", "CURRENT", "HIGH WATER", "ACTUAL"); err != nil {
		return err
	}

	for _, a := range r.Allocators() {
		_, err := p.Fprintf(w, "%-24s %16d %16d %16d\n",
			a.Name(), a.CurrentSize(), a.HighWatermark(), a.ActualSize())
		if err != nil {
			return err
		}
	}
	return nil
}
