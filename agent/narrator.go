package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/teecush/tracker"
	"github.com/teecush/tracker/date"
	"github.com/teecush/tracker/insight"
)

// recent is the number of transactions shown to the model.
const recent = 10

const analyst = "You are a financial analyst AI that provides concise, insightful analysis of investment portfolios."

// Narrator generates insights by asking a language model.
//
// The model answer is returned as a single narrative insight, its content is not
// checked beyond being non empty.
type Narrator struct {
	Model Model
	Today func() date.Date
}

// NewNarrator returns a Narrator on m using the wall clock.
func NewNarrator(m Model) *Narrator {
	return &Narrator{Model: m, Today: date.Today}
}

// Generate implements insight.Generator.
func (n *Narrator) Generate(ctx context.Context, t tracker.Table, m tracker.Metrics) ([]insight.Insight, error) {
	today := date.Today()
	if n.Today != nil {
		today = n.Today()
	}
	text, err := n.Model.Generate(ctx, analyst, Prompt(today, t, m))
	if err != nil {
		return nil, err
	}
	return []insight.Insight{{Category: insight.Narrative, Text: text}}, nil
}

// Prompt is the request sent to the model.
func Prompt(today date.Date, t tracker.Table, m tracker.Metrics) string {
	var b strings.Builder
	b.WriteString("As an investment analysis AI, review this portfolio data and provide 3-5 key insights.\n")
	fmt.Fprintf(&b, "Today's date: %s\n\n", today.Time().Format("January 02, 2006"))
	b.WriteString("PORTFOLIO METRICS:\n")
	b.WriteString(FormatMetrics(m))
	b.WriteString("\nTRANSACTION HISTORY:\n")
	b.WriteString(FormatTransactions(t))
	b.WriteString(`
Provide specific, data-driven insights about:
1. Performance trends and patterns
2. Growth rate and return on investment
3. Distribution across different account types
4. Suggestions for portfolio optimization

Format your response in bullet points starting with emoji icons.
Keep your analysis concise but insightful (max 250 words).
`)
	return b.String()
}

// FormatMetrics lists the metrics one per line.
func FormatMetrics(m tracker.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Invested: %s\n", m.TotalInvested)
	fmt.Fprintf(&b, "Current Balance: %s\n", m.CurrentBalance)
	fmt.Fprintf(&b, "Total Earnings: %s\n", m.TotalEarnings)
	fmt.Fprintf(&b, "Average Monthly Earnings: %s\n", m.AvgMonthlyEarnings)
	fmt.Fprintf(&b, "Months Invested: %d\n", m.MonthsInvested)
	return b.String()
}

// FormatTransactions lists the most recent transactions, newest first.
func FormatTransactions(t tracker.Table) string {
	if len(t) == 0 {
		return "No transaction data available."
	}
	log := t.Log()
	if len(log) > recent {
		log = log[:recent]
	}
	var b strings.Builder
	for _, tx := range log {
		investment := "No investment"
		if !tx.Investment.IsZero() {
			investment = tx.Investment.String()
		}
		account := tx.AccountType
		if account == "" {
			account = tracker.NoType
		}
		fmt.Fprintf(&b, "Date: %s, Investment: %s, Balance: %s, Account: %s, Notes: %s\n",
			tx.Date.US(), investment, tx.Balance, account, tx.Notes)
	}
	return b.String()
}
