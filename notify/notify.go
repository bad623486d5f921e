// Package notify sends portfolio updates by SMS.
package notify

import (
	"fmt"
	"strings"

	"github.com/teecush/tracker"
)

// UpdateMessage is the SMS text summarizing m.
func UpdateMessage(m tracker.Metrics) string {
	var b strings.Builder
	b.WriteString("Portfolio Update:\n")
	fmt.Fprintf(&b, "Total Invested: %s\n", m.TotalInvested)
	fmt.Fprintf(&b, "Current Balance: %s\n", m.CurrentBalance)
	fmt.Fprintf(&b, "Total Earnings: %s\n", m.TotalEarnings)
	fmt.Fprintf(&b, "Avg Monthly Earnings: %s\n", m.AvgMonthlyEarnings)
	fmt.Fprintf(&b, "Months Invested: %d", m.MonthsInvested)
	return b.String()
}
