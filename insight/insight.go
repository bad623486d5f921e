// Package insight turns a transaction table and its metrics into short,
// human-readable observations.
package insight

import (
	"context"
	"strings"

	"github.com/teecush/tracker"
)

// Category tells what an insight is about.
type Category int

const (
	Performance Category = iota
	Growth
	Concentration
	Projection
	Month
	Narrative // free text from a language model
)

var categoryNames = [...]string{"performance", "growth", "concentration", "projection", "month", "narrative"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Insight is one observation.
type Insight struct {
	Category Category `json:"category"`
	Marker   string   `json:"marker,omitempty"` // emoji prefix
	Text     string   `json:"text"`
}

func (i Insight) String() string {
	if i.Marker == "" {
		return i.Text
	}
	return i.Marker + " " + i.Text
}

// Generator produces insights about a table. Implementations must not modify the table.
type Generator interface {
	Generate(ctx context.Context, t tracker.Table, m tracker.Metrics) ([]Insight, error)
}

// Separator is put between insights when they are joined.
const Separator = "\n\n"

// Join renders insights in order, separated by Separator.
func Join(insights []Insight) string {
	parts := make([]string, 0, len(insights))
	for _, i := range insights {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, Separator)
}

// Warning is the text shown in place of insights when a generator fails.
func Warning(err error) string {
	return "⚠️ Could not generate insights: " + err.Error()
}

// Text runs g and joins its insights. A failure is converted into a single
// warning line, it never reaches the caller as an error.
func Text(ctx context.Context, g Generator, t tracker.Table, m tracker.Metrics) string {
	insights, err := g.Generate(ctx, t, m)
	if err != nil {
		return Warning(err)
	}
	return Join(insights)
}
