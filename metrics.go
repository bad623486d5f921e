package tracker

import "github.com/teecush/tracker/date"

// Metrics are the five figures summarizing a table.
//
// They are derived on every request and never stored.
type Metrics struct {
	TotalInvested      Money `json:"totalInvested"`
	CurrentBalance     Money `json:"currentBalance"`
	TotalEarnings      Money `json:"totalEarnings"`
	MonthsInvested     int   `json:"monthsInvested"`
	AvgMonthlyEarnings Money `json:"avgMonthlyEarnings"`
}

// ComputeMetrics reduces a table into its Metrics. It never fails, an empty table
// yields zero metrics. The table is not modified and its order does not matter.
//
// MonthsInvested counts calendar-month boundaries between the earliest and the
// latest date, not elapsed days: Jan 31 to Feb 1 is one month.
func ComputeMetrics(t Table) Metrics {
	zero := M(0, t.Currency())
	m := Metrics{TotalInvested: zero, CurrentBalance: zero}
	for _, tx := range t {
		m.TotalInvested = m.TotalInvested.Add(tx.Investment)
	}
	if last, ok := t.Last(); ok {
		m.CurrentBalance = last.Balance
	}
	m.TotalEarnings = m.CurrentBalance.Sub(m.TotalInvested)

	if from, to, ok := t.Span(); ok {
		m.MonthsInvested = date.MonthsBetween(from, to)
	}
	m.AvgMonthlyEarnings = m.TotalEarnings.Div(int64(max(m.MonthsInvested, 1)))
	return m
}

// ROI returns the earnings as a percentage of the invested amount, 0 when nothing was invested.
func (m Metrics) ROI() Percent {
	if !m.TotalInvested.IsPositive() {
		return 0
	}
	return Percent(m.TotalEarnings.Ratio(m.TotalInvested) * 100)
}

// AnnualizedROI scales ROI to twelve months, 0 when less than a month was invested.
func (m Metrics) AnnualizedROI() Percent {
	if m.MonthsInvested <= 0 {
		return 0
	}
	return m.ROI() / Percent(m.MonthsInvested) * 12
}
