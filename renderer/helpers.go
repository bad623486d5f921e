package renderer

import (
	"strings"

	"github.com/teecush/tracker"
)

// Metrics renders the metrics as a markdown list.
func Metrics(m tracker.Metrics) string {
	var b strings.Builder
	for _, c := range NewCards(m) {
		b.WriteString("- **" + c.Label + "**: " + c.Value)
		if c.Delta != "" && c.Delta != "-" {
			b.WriteString(" (" + c.Delta + ")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Transactions renders up to limit transactions of the log, all if limit <= 0.
func Transactions(t tracker.Table, limit int) string {
	d := &Dashboard{Log: NewLog(t)}
	if limit > 0 && len(d.Log) > limit {
		d.Log = d.Log[:limit]
	}
	return RenderLog(d)
}
