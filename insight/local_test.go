package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/teecush/tracker"
	"github.com/teecush/tracker/date"
)

func tx(on string, investment, balance float64, account string) tracker.Transaction {
	return tracker.Transaction{
		Date:        date.MustParse(on),
		Investment:  tracker.M(investment, "USD"),
		Balance:     tracker.M(balance, "USD"),
		AccountType: account,
	}
}

// fixed returns a generator whose today is on.
func fixed(on string) *Local {
	return &Local{Today: func() date.Date { return date.MustParse(on) }}
}

func categories(insights []Insight) []Category {
	var res []Category
	for _, i := range insights {
		res = append(res, i.Category)
	}
	return res
}

func find(insights []Insight, c Category) (Insight, bool) {
	for _, i := range insights {
		if i.Category == c {
			return i, true
		}
	}
	return Insight{}, false
}

func TestLocal_Empty(t *testing.T) {
	got := fixed("2024-06-15").Insights(tracker.Table{}, tracker.ComputeMetrics(nil))
	if len(got) != 0 {
		t.Errorf("Insights(empty) = %v, want none", got)
	}
}

func TestLocal_Performance(t *testing.T) {
	testCases := []struct {
		name    string
		balance float64
		marker  string
		text    string
	}{
		{"excellent", 1200, "💰", "Excellent performance! Your portfolio has earned 20.0% returns (48.0% annualized)"},
		{"good", 1100, "📈", "Good performance! Your portfolio has earned 10.0% returns (24.0% annualized)"},
		{"positive", 1050, "✅", "Your portfolio is showing positive returns of 5.0% (12.0% annualized)"},
		{"flat", 1000, "⚠️", "Your portfolio is currently showing 0.0% returns."},
		{"negative", 900, "⚠️", "Your portfolio is currently showing -10.0% returns."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := tracker.Table{
				tx("2024-01-01", 1000, 1000, "TFSA"),
				tx("2024-06-01", 0, tc.balance, "TFSA"),
			}
			got := fixed("2030-01-01").Insights(table, tracker.ComputeMetrics(table))
			if len(got) == 0 || got[0].Category != Performance {
				t.Fatalf("first insight = %v, want performance", got)
			}
			if got[0].Marker != tc.marker || !strings.HasPrefix(got[0].Text, tc.text) {
				t.Errorf("performance = %q, want %s %q...", got[0], tc.marker, tc.text)
			}
		})
	}
}

func TestLocal_PerformanceNothingInvested(t *testing.T) {
	table := tracker.Table{tx("2024-03-01", 0, 200, tracker.NoType)}
	got := fixed("2030-01-01").Insights(table, tracker.ComputeMetrics(table))
	if len(got) != 1 || got[0].Text != "Your portfolio is currently showing 0.0% returns. This might improve with more time in the market." {
		t.Errorf("Insights() = %v", got)
	}
}

func TestLocal_Growth(t *testing.T) {
	testCases := []struct {
		name   string
		last   float64
		months string
		marker string
		text   string
	}{
		// (1.1)^(1/10) - 1 = 0.958%
		{"steady below one percent", 1100, "2024-11-01", "📊", "Your portfolio is growing steadily at approximately 1.0% per month."},
		{"solid", 1200, "2024-11-01", "📈", "Solid growth rate! Your portfolio is growing at approximately 1.8% per month."},
		{"impressive", 2000, "2024-06-01", "🚀", "Impressive growth rate! Your portfolio is growing at approximately 14.9% per month."},
		{"declining", 900, "2024-11-01", "📉", "Your portfolio has shown a change of -1.0% per month over the analyzed period."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := tracker.Table{
				tx(tc.months, 0, tc.last, "TFSA"),
				tx("2024-01-01", 1000, 1000, "TFSA"),
				tx("2024-02-01", 0, 1010, "TFSA"),
			}
			got, ok := find(fixed("2030-01-01").Insights(table, tracker.ComputeMetrics(table)), Growth)
			if !ok {
				t.Fatalf("no growth insight")
			}
			if got.Marker != tc.marker || got.Text != tc.text {
				t.Errorf("growth = %q, want %s %q", got, tc.marker, tc.text)
			}
		})
	}
}

func TestLocal_GrowthGates(t *testing.T) {
	testCases := []struct {
		name  string
		table tracker.Table
	}{
		{"two rows", tracker.Table{
			tx("2024-01-01", 1000, 1000, "TFSA"),
			tx("2024-11-01", 0, 1100, "TFSA"),
		}},
		{"less than 30 days", tracker.Table{
			tx("2024-01-15", 1000, 1000, "TFSA"),
			tx("2024-01-20", 0, 1010, "TFSA"),
			tx("2024-02-10", 0, 1100, "TFSA"),
		}},
		{"same calendar month", tracker.Table{
			tx("2024-01-01", 1000, 1000, "TFSA"),
			tx("2024-01-15", 0, 1010, "TFSA"),
			tx("2024-01-31", 0, 1100, "TFSA"),
		}},
		{"first balance is zero", tracker.Table{
			tx("2024-01-01", 0, 0, "TFSA"),
			tx("2024-03-01", 1000, 1000, "TFSA"),
			tx("2024-06-01", 0, 1100, "TFSA"),
		}},
		{"last balance is negative", tracker.Table{
			tx("2024-01-01", 1000, 1000, "TFSA"),
			tx("2024-03-01", 0, 500, "TFSA"),
			tx("2024-06-01", 0, -50, "TFSA"),
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			all := fixed("2030-01-01").Insights(tc.table, tracker.ComputeMetrics(tc.table))
			if text := Join(all); strings.Contains(text, "NaN") || strings.Contains(text, "Inf") {
				t.Errorf("insights contain a non-number:\n%s", text)
			}
			if got, ok := find(all, Growth); ok {
				t.Errorf("unexpected growth insight %q", got)
			}
		})
	}
}

func TestLocal_Concentration(t *testing.T) {
	testCases := []struct {
		name     string
		tfsa     float64
		rrsp     float64
		marker   string
		text     string
		expected bool
	}{
		{"heavily concentrated", 900, 100, "⚖️", "Your portfolio is heavily concentrated in TFSA (90.0%). Consider diversifying across different account types.", true},
		{"significant", 300, 700, "📊", "Your portfolio has a significant allocation to RRSP (70.0%). This shows clear focus while maintaining some diversification.", true},
		{"balanced", 500, 500, "🔄", "Your portfolio has a balanced distribution across different account types, with TFSA representing 50.0% of your investments.", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := tracker.Table{
				tx("2024-01-01", tc.tfsa, tc.tfsa, "TFSA"),
				tx("2024-02-01", tc.rrsp, tc.tfsa+tc.rrsp, "RRSP"),
				tx("2024-03-01", 0, tc.tfsa+tc.rrsp, tracker.NoType),
			}
			got, ok := find(fixed("2030-01-01").Insights(table, tracker.ComputeMetrics(table)), Concentration)
			if ok != tc.expected {
				t.Fatalf("concentration present = %v, want %v", ok, tc.expected)
			}
			if got.Marker != tc.marker || got.Text != tc.text {
				t.Errorf("concentration = %q, want %s %q", got, tc.marker, tc.text)
			}
		})
	}
}

func TestLocal_ConcentrationSingleAccount(t *testing.T) {
	table := tracker.Table{
		tx("2024-01-01", 900, 900, "TFSA"),
		tx("2024-02-01", 100, 1000, tracker.NoType),
		tx("2024-03-01", 100, 1100, ""),
	}
	if got, ok := find(fixed("2030-01-01").Insights(table, tracker.ComputeMetrics(table)), Concentration); ok {
		t.Errorf("unexpected concentration insight %q with a single labelled account", got)
	}
}

func TestLocal_Projection(t *testing.T) {
	// earnings 300 over 5 months: 60/month on a 1800 balance.
	table := tracker.Table{
		tx("2024-01-01", 1000, 1000, "TFSA"),
		tx("2024-06-01", 500, 1800, "TFSA"),
	}
	got, ok := find(fixed("2030-01-01").Insights(table, tracker.ComputeMetrics(table)), Projection)
	if !ok {
		t.Fatalf("no projection insight")
	}
	// ln(2)/ln(1+60/1800)/12 = 1.76 years
	want := "At your current average monthly return rate, your portfolio could double in approximately 1.8 years."
	if got.Text != want || got.Marker != "🔮" {
		t.Errorf("projection = %q, want %q", got, want)
	}
}

func TestLocal_ProjectionGates(t *testing.T) {
	testCases := []struct {
		name  string
		table tracker.Table
	}{
		{"single month", tracker.Table{tx("2024-03-01", 200, 300, "TFSA")}},
		{"losing money", tracker.Table{
			tx("2024-01-01", 1000, 1000, "TFSA"),
			tx("2024-06-01", 0, 900, "TFSA"),
		}},
		{"doubling within a month", tracker.Table{
			tx("2024-01-01", 0, 0, "TFSA"),
			tx("2024-02-01", 0, 100, "TFSA"),
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := find(fixed("2030-01-01").Insights(tc.table, tracker.ComputeMetrics(tc.table)), Projection); ok {
				t.Errorf("unexpected projection insight %q", got)
			}
		})
	}
}

func TestLocal_MonthOverMonth(t *testing.T) {
	table := tracker.Table{
		tx("2024-05-03", 1000, 1000, "TFSA"),
		tx("2024-05-28", 0, 1040, "TFSA"),
		tx("2024-06-14", 0, 1071, "TFSA"),
		tx("2024-06-02", 0, 1050, "TFSA"),
	}
	m := tracker.ComputeMetrics(table)

	t.Run("strong", func(t *testing.T) {
		got, ok := find(fixed("2024-06-20").Insights(table, m), Month)
		if !ok {
			t.Fatalf("no month insight")
		}
		want := "Strong performance in June! Your portfolio has grown by 3.0% this month."
		if got.Text != want || got.Marker != "🌟" {
			t.Errorf("month = %q, want %q", got, want)
		}
	})

	t.Run("no data this month", func(t *testing.T) {
		if got, ok := find(fixed("2024-08-01").Insights(table, m), Month); ok {
			t.Errorf("unexpected month insight %q", got)
		}
	})

	t.Run("last month ended at zero", func(t *testing.T) {
		table := tracker.Table{
			tx("2024-05-03", 1000, 1000, "TFSA"),
			tx("2024-05-28", 0, 0, "TFSA"),
			tx("2024-06-14", 1000, 1010, "TFSA"),
		}
		if got, ok := find(fixed("2024-06-20").Insights(table, tracker.ComputeMetrics(table)), Month); ok {
			t.Errorf("unexpected month insight %q", got)
		}
	})

	t.Run("no data last month", func(t *testing.T) {
		if got, ok := find(fixed("2024-05-31").Insights(table, m), Month); ok {
			t.Errorf("unexpected month insight %q", got)
		}
	})
}

func TestLocal_MonthOverMonthJanuary(t *testing.T) {
	table := tracker.Table{
		tx("2023-12-31", 1000, 1000, "TFSA"),
		tx("2024-01-02", 0, 950, "TFSA"),
	}
	got, ok := find(fixed("2024-01-10").Insights(table, tracker.ComputeMetrics(table)), Month)
	if !ok {
		t.Fatalf("no month insight")
	}
	if want := "Your portfolio has changed by -5.0% in January."; got.Text != want {
		t.Errorf("month = %q, want %q", got.Text, want)
	}
}

func TestLocal_Order(t *testing.T) {
	table := tracker.Table{
		tx("2024-01-01", 900, 900, "TFSA"),
		tx("2024-03-01", 100, 1100, "RRSP"),
		tx("2024-05-31", 0, 1200, "TFSA"),
		tx("2024-06-10", 0, 1300, "TFSA"),
	}
	got := fixed("2024-06-15").Insights(table, tracker.ComputeMetrics(table))
	want := []Category{Performance, Growth, Concentration, Projection, Month}
	if c := categories(got); len(c) != len(want) {
		t.Fatalf("categories = %v, want %v", c, want)
	}
	for i := range want {
		if got[i].Category != want[i] {
			t.Errorf("insight %d is %v, want %v", i, got[i].Category, want[i])
		}
	}

	text := Join(got)
	if n := strings.Count(text, Separator); n != 4 {
		t.Errorf("Join() has %d separators, want 4", n)
	}
	if !strings.HasPrefix(text, "💰 ") {
		t.Errorf("Join() = %q, want the marker first", text)
	}
}

func TestLocal_Deterministic(t *testing.T) {
	table := tracker.Table{
		tx("2024-06-10", 0, 1300, "TFSA"),
		tx("2024-01-01", 900, 900, "TFSA"),
		tx("2024-03-01", 100, 1100, "RRSP"),
	}
	g := fixed("2024-06-15")
	a := Join(g.Insights(table, tracker.ComputeMetrics(table)))
	b := Join(g.Insights(table, tracker.ComputeMetrics(table)))
	if a != b {
		t.Errorf("two runs differ:\n%s\n%s", a, b)
	}
}

type failing struct{}

func (failing) Generate(context.Context, tracker.Table, tracker.Metrics) ([]Insight, error) {
	return nil, errors.New("quota exceeded")
}

func TestText(t *testing.T) {
	table := tracker.Table{tx("2024-03-01", 200, 200, tracker.NoType)}
	m := tracker.ComputeMetrics(table)

	if got, want := Text(context.Background(), failing{}, table, m), "⚠️ Could not generate insights: quota exceeded"; got != want {
		t.Errorf("Text(failing) = %q, want %q", got, want)
	}
	got := Text(context.Background(), fixed("2030-01-01"), table, m)
	if !strings.HasPrefix(got, "⚠️ Your portfolio is currently showing 0.0% returns.") {
		t.Errorf("Text(local) = %q", got)
	}
}
