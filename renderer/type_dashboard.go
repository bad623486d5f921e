package renderer

import (
	"math"
	"strconv"
	"strings"

	"github.com/teecush/tracker"
)

// DefaultTitle is the dashboard title when none is given.
const DefaultTitle = "Investment Portfolio Tracker"

// barWidth is the length of the longest chart bar, in characters.
const barWidth = 20

// Dashboard is the content of the dashboard page, ready for the templates.
type Dashboard struct {
	Title    string   `json:"title"`
	Warnings []string `json:"warnings,omitempty"`
	Cards    []Card   `json:"cards"`
	Chart    []Bar    `json:"chart"`
	Insights string   `json:"insights"`
	Log      []Row    `json:"log"`
}

// Card is one metric of the overview.
type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// Bar is one chart line, in chronological order.
type Bar struct {
	Date       string `json:"date"`
	Bar        string `json:"bar"`
	Balance    string `json:"balance"`
	Investment string `json:"investment"`
}

// Row is one line of the transaction log. Index is the 1-based position used to
// delete it.
type Row struct {
	Index       int    `json:"index"`
	Date        string `json:"date"`
	Investment  string `json:"investment"`
	Balance     string `json:"balance"`
	AccountType string `json:"accountType"`
	Notes       string `json:"notes"`
}

// NewDashboard prepares the dashboard of t. insights is the already generated
// insight text, it may be empty.
func NewDashboard(t tracker.Table, m tracker.Metrics, insights string) *Dashboard {
	return &Dashboard{
		Title:    DefaultTitle,
		Cards:    NewCards(m),
		Chart:    NewChart(t),
		Insights: insights,
		Log:      NewLog(t),
	}
}

// NewCards returns the five metrics, the balance card carries the ROI.
func NewCards(m tracker.Metrics) []Card {
	return []Card{
		{Label: "Total Invested", Value: m.TotalInvested.String()},
		{Label: "Current Balance", Value: m.CurrentBalance.String(), Delta: m.ROI().SignedString()},
		{Label: "Total Earnings", Value: m.TotalEarnings.String()},
		{Label: "Avg Monthly Earnings", Value: m.AvgMonthlyEarnings.String()},
		{Label: "Months Invested", Value: strconv.Itoa(m.MonthsInvested)},
	}
}

// NewChart returns one bar per transaction, scaled to the largest balance.
func NewChart(t tracker.Table) []Bar {
	sorted := t.Sorted()
	var top tracker.Money
	for _, tx := range sorted {
		if tx.Balance.GreaterThan(top) {
			top = tx.Balance
		}
	}
	bars := make([]Bar, 0, len(sorted))
	for _, tx := range sorted {
		width := 0
		if top.IsPositive() && tx.Balance.IsPositive() {
			width = int(math.Round(tx.Balance.Ratio(top) * barWidth))
		}
		bars = append(bars, Bar{
			Date:       tx.Date.US(),
			Bar:        strings.Repeat("█", width),
			Balance:    tx.Balance.String(),
			Investment: tx.Investment.String(),
		})
	}
	return bars
}

// NewLog returns the transaction log, newest first.
func NewLog(t tracker.Table) []Row {
	log := t.Log()
	rows := make([]Row, 0, len(log))
	for i, tx := range log {
		rows = append(rows, Row{
			Index:       i + 1,
			Date:        tx.Date.US(),
			Investment:  tx.Investment.String(),
			Balance:     tx.Balance.String(),
			AccountType: cell(tx.AccountType),
			Notes:       cell(tx.Notes),
		})
	}
	return rows
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
