package insight

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/date"
)

// Local generates insights with fixed heuristics, without any remote service.
//
// The month-over-month insight depends on Today, so the output for a given table
// changes from one month to the next.
type Local struct {
	Today func() date.Date
}

// NewLocal returns a Local generator using the wall clock.
func NewLocal() *Local {
	return &Local{Today: date.Today}
}

// rule produces one insight, ok is false when its preconditions do not hold.
type rule func(sorted tracker.Table, m tracker.Metrics, today date.Date) (Insight, bool)

// rules are evaluated in this order.
var rules = []rule{
	performance,
	growth,
	concentration,
	projection,
	monthOverMonth,
}

// Generate implements Generator. It never fails.
func (l *Local) Generate(_ context.Context, t tracker.Table, m tracker.Metrics) ([]Insight, error) {
	return l.Insights(t, m), nil
}

// Insights returns up to five insights in fixed order: performance, growth,
// concentration, projection and month over month. An empty table has none.
func (l *Local) Insights(t tracker.Table, m tracker.Metrics) []Insight {
	if len(t) == 0 {
		return nil
	}
	today := date.Today()
	if l.Today != nil {
		today = l.Today()
	}
	sorted := t.Sorted()

	var res []Insight
	for _, r := range rules {
		if i, ok := r(sorted, m, today); ok {
			res = append(res, i)
		}
	}
	return res
}

func performance(_ tracker.Table, m tracker.Metrics, _ date.Date) (Insight, bool) {
	return performanceLadder.insight(Performance, facts{
		Value:      float64(m.ROI()),
		Annualized: float64(m.AnnualizedROI()),
	}), true
}

// growth is the compound monthly growth rate between the first and last balance.
func growth(sorted tracker.Table, _ tracker.Metrics, _ date.Date) (Insight, bool) {
	if len(sorted) < 3 {
		return Insight{}, false
	}
	first, last := sorted[0], sorted[len(sorted)-1]
	if date.DaysBetween(first.Date, last.Date) < 30 {
		return Insight{}, false
	}
	months := date.MonthsBetween(first.Date, last.Date)
	if months <= 0 || !first.Balance.IsPositive() || last.Balance.IsNegative() {
		return Insight{}, false
	}
	rate := (math.Pow(last.Balance.Ratio(first.Balance), 1/float64(months)) - 1) * 100
	return growthLadder.insight(Growth, facts{Value: rate}), true
}

// concentration is the share of the account type holding most of the investments.
func concentration(sorted tracker.Table, m tracker.Metrics, _ date.Date) (Insight, bool) {
	var names []string
	sums := map[string]decimal.Decimal{}
	for _, tx := range sorted {
		if !tx.Labelled() {
			continue
		}
		if _, seen := sums[tx.AccountType]; !seen {
			names = append(names, tx.AccountType)
			sums[tx.AccountType] = decimal.Zero
		}
		if tx.Investment.IsPositive() {
			sums[tx.AccountType] = sums[tx.AccountType].Add(tx.Investment.Decimal())
		}
	}
	if len(names) < 2 {
		return Insight{}, false
	}

	top := names[0]
	for _, name := range names[1:] {
		if sums[name].GreaterThan(sums[top]) {
			top = name
		}
	}
	var share float64
	if m.TotalInvested.IsPositive() {
		share = sums[top].Div(m.TotalInvested.Decimal()).InexactFloat64() * 100
	}
	return concentrationLadder.insight(Concentration, facts{Value: share, Account: top}), true
}

// projection is the time needed to double the balance at the average monthly
// earnings, compounded monthly.
func projection(_ tracker.Table, m tracker.Metrics, _ date.Date) (Insight, bool) {
	if m.MonthsInvested <= 0 || !m.AvgMonthlyEarnings.IsPositive() || !m.CurrentBalance.IsPositive() {
		return Insight{}, false
	}
	rate := m.AvgMonthlyEarnings.Ratio(m.CurrentBalance)
	if rate <= 0 || rate >= 1 {
		return Insight{}, false
	}
	years := math.Log(2) / math.Log(1+rate) / 12
	return projectionLadder.insight(Projection, facts{Value: years}), true
}

// monthOverMonth compares the last balance of today's month with the last
// balance of the month before.
func monthOverMonth(sorted tracker.Table, _ tracker.Metrics, today date.Date) (Insight, bool) {
	current, ok := sorted.InMonth(today.Year(), today.Month()).Last()
	if !ok {
		return Insight{}, false
	}
	previous, ok := sorted.InMonth(today.PreviousMonth()).Last()
	if !ok || !previous.Balance.IsPositive() {
		return Insight{}, false
	}
	change := current.Balance.Sub(previous.Balance).Ratio(previous.Balance) * 100
	return monthLadder.insight(Month, facts{Value: change, Month: today.Month().String()}), true
}
