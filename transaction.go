package tracker

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/teecush/tracker/date"
)

// NoType is the account type of a row that has none.
const NoType = "-"

// AccountTypes are the labels offered by default, any other text is accepted.
var AccountTypes = []string{"RRSP", "TFSA", "Non-Registered"}

// Transaction is one dated record of a contribution and the resulting balance.
type Transaction struct {
	Date        date.Date `json:"date"`
	Investment  Money     `json:"investment"`
	Balance     Money     `json:"totalBalance"`
	AccountType string    `json:"accountType"`
	Notes       string    `json:"notes"`
}

// Labelled reports whether the transaction carries a real account type.
func (tx Transaction) Labelled() bool {
	return IsLabelled(tx.AccountType)
}

// IsLabelled reports whether an account type is a real label and not the sentinel.
func IsLabelled(accountType string) bool {
	s := strings.TrimSpace(accountType)
	return s != "" && s != NoType
}

// Equal reports whether both rows hold exactly the same values.
func (tx Transaction) Equal(o Transaction) bool {
	return tx.Date == o.Date &&
		tx.Investment.Decimal().Equal(o.Investment.Decimal()) &&
		tx.Balance.Decimal().Equal(o.Balance.Decimal()) &&
		tx.AccountType == o.AccountType &&
		tx.Notes == o.Notes
}

// Table is an ordered sequence of transactions.
//
// The order is whatever the producer gave, use Sorted before relying on
// first/last positions. Duplicates are valid.
type Table []Transaction

// byDate orders chronologically. Rows of the same day are ordered by content
// so that the result does not depend on the input order.
func byDate(a, b Transaction) int {
	switch {
	case a.Date.Before(b.Date):
		return -1
	case a.Date.After(b.Date):
		return 1
	}
	if c := a.Balance.Cmp(b.Balance); c != 0 {
		return c
	}
	if c := a.Investment.Cmp(b.Investment); c != 0 {
		return c
	}
	return cmp.Or(
		strings.Compare(a.AccountType, b.AccountType),
		strings.Compare(a.Notes, b.Notes),
	)
}

// Sorted returns a chronological copy of t. Rows on the same day are ordered by
// balance, investment, account type then notes.
func (t Table) Sorted() Table {
	s := slices.Clone(t)
	slices.SortStableFunc(s, byDate)
	return s
}

// Log returns a newest-first copy of t, the order of the transaction log.
func (t Table) Log() Table {
	s := slices.Clone(t)
	slices.SortStableFunc(s, func(a, b Transaction) int { return -byDate(a, b) })
	return s
}

// Last returns the chronologically last transaction. Among rows of the same
// day the one with the highest balance wins.
func (t Table) Last() (Transaction, bool) {
	if len(t) == 0 {
		return Transaction{}, false
	}
	s := t.Sorted()
	return s[len(s)-1], true
}

// InMonth returns the rows dated in the given calendar month.
func (t Table) InMonth(year int, month time.Month) Table {
	var res Table
	for _, tx := range t {
		if tx.Date.SameMonth(year, month) {
			res = append(res, tx)
		}
	}
	return res
}

// Currency returns the currency of the first row that has one, DefaultCurrency
// otherwise.
func (t Table) Currency() string {
	for _, tx := range t {
		if c := tx.Balance.Currency(); c != "" {
			return c
		}
	}
	return DefaultCurrency
}

// Span returns the earliest and latest dates of t.
func (t Table) Span() (from, to date.Date, ok bool) {
	if len(t) == 0 {
		return
	}
	from, to = t[0].Date, t[0].Date
	for _, tx := range t[1:] {
		if tx.Date.Before(from) {
			from = tx.Date
		}
		if tx.Date.After(to) {
			to = tx.Date
		}
	}
	return from, to, true
}

// Merge concatenates a and b, drops exact duplicate rows, and sorts the result by date.
func Merge(a, b Table) Table {
	res := make(Table, 0, len(a)+len(b))
	for _, tx := range slices.Concat(a, b) {
		if slices.ContainsFunc(res, tx.Equal) {
			continue
		}
		res = append(res, tx)
	}
	return res.Sorted()
}
