package insight

import (
	"fmt"
	"strings"
	"text/template"
)

// facts are the values a rung template can print.
type facts struct {
	Value      float64
	Annualized float64
	Account    string
	Month      string
}

// rung is one step of a ladder: when match accepts the value, the template is used.
type rung struct {
	match  func(float64) bool
	marker string
	tmpl   *template.Template
}

// ladder is an ordered list of rungs, the first match wins.
type ladder []rung

var funcs = template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}

func step(match func(float64) bool, marker, text string) rung {
	return rung{
		match:  match,
		marker: marker,
		tmpl:   template.Must(template.New(marker).Funcs(funcs).Parse(text)),
	}
}

// above matches values strictly greater than x.
func above(x float64) func(float64) bool {
	return func(v float64) bool { return v > x }
}

func always(float64) bool { return true }

// pick returns the first rung matching v. Ladders end with an always rung.
func (l ladder) pick(v float64) rung {
	for _, r := range l {
		if r.match(v) {
			return r
		}
	}
	return l[len(l)-1]
}

// insight renders the rung matching f.Value.
func (l ladder) insight(c Category, f facts) Insight {
	r := l.pick(f.Value)
	var b strings.Builder
	if err := r.tmpl.Execute(&b, f); err != nil {
		// templates are static and covered by tests.
		panic(err)
	}
	return Insight{Category: c, Marker: r.marker, Text: b.String()}
}

var performanceLadder = ladder{
	step(above(15), "💰", `Excellent performance! Your portfolio has earned {{pct .Value}}% returns ({{pct .Annualized}}% annualized), which is significantly above average market returns.`),
	step(above(8), "📈", `Good performance! Your portfolio has earned {{pct .Value}}% returns ({{pct .Annualized}}% annualized), which is above average market returns.`),
	step(above(0), "✅", `Your portfolio is showing positive returns of {{pct .Value}}% ({{pct .Annualized}}% annualized), which is a good foundation.`),
	step(always, "⚠️", `Your portfolio is currently showing {{pct .Value}}% returns. This might improve with more time in the market.`),
}

var growthLadder = ladder{
	step(above(3), "🚀", `Impressive growth rate! Your portfolio is growing at approximately {{pct .Value}}% per month.`),
	step(above(1), "📈", `Solid growth rate! Your portfolio is growing at approximately {{pct .Value}}% per month.`),
	step(above(0), "📊", `Your portfolio is growing steadily at approximately {{pct .Value}}% per month.`),
	step(always, "📉", `Your portfolio has shown a change of {{pct .Value}}% per month over the analyzed period.`),
}

var concentrationLadder = ladder{
	step(above(80), "⚖️", `Your portfolio is heavily concentrated in {{.Account}} ({{pct .Value}}%). Consider diversifying across different account types.`),
	step(above(60), "📊", `Your portfolio has a significant allocation to {{.Account}} ({{pct .Value}}%). This shows clear focus while maintaining some diversification.`),
	step(always, "🔄", `Your portfolio has a balanced distribution across different account types, with {{.Account}} representing {{pct .Value}}% of your investments.`),
}

var projectionLadder = ladder{
	step(always, "🔮", `At your current average monthly return rate, your portfolio could double in approximately {{pct .Value}} years.`),
}

var monthLadder = ladder{
	step(above(5), "✨", `Outstanding performance in {{.Month}}! Your portfolio has grown by {{pct .Value}}% this month.`),
	step(above(2), "🌟", `Strong performance in {{.Month}}! Your portfolio has grown by {{pct .Value}}% this month.`),
	step(above(0), "👍", `Positive growth in {{.Month}}. Your portfolio has increased by {{pct .Value}}% this month.`),
	step(always, "📊", `Your portfolio has changed by {{pct .Value}}% in {{.Month}}.`),
}
