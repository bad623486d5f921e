package tracker

import "github.com/teecush/tracker/date"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// tx is a helper for test to create a transaction in USD.
func tx(on string, investment, balance float64, account, notes string) Transaction {
	return Transaction{
		Date:        date.MustParse(on),
		Investment:  USD(investment),
		Balance:     USD(balance),
		AccountType: account,
		Notes:       notes,
	}
}
