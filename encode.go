package tracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/teecush/tracker/date"
	"github.com/teecush/tracker/logger"
)

// Header is the column layout of transaction CSV files.
var Header = []string{"Date", "Investment", "Total Balance", "Account Type", "Notes"}

// ErrColumns is returned when a CSV file has fewer columns than Header.
var ErrColumns = errors.New("unexpected columns")

// DecodeCSV reads a transaction table from CSV.
//
// Columns are taken by position and any extra column is ignored. Rows whose date
// cannot be parsed are dropped, amounts that are not numbers count as zero, a
// blank account type becomes NoType. The table is returned in file order.
func DecodeCSV(r io.Reader, currency string) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if len(head) < len(Header) {
		return nil, fmt.Errorf("%w: found %q, want %q", ErrColumns, head, Header)
	}

	t := Table{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}
		tx, ok := decodeRecord(rec, currency)
		if !ok {
			logger.Get().Warnw("dropping row with invalid date", "line", line, "date", field(rec, 0))
			continue
		}
		t = append(t, tx)
	}
	return t, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}

func decodeRecord(rec []string, currency string) (Transaction, bool) {
	on, err := date.ParseAny(field(rec, 0))
	if err != nil {
		return Transaction{}, false
	}
	inv, ok := ParseAmount(field(rec, 1), currency)
	if !ok {
		logger.Get().Debugw("investment is not a number, using 0", "value", field(rec, 1))
	}
	bal, ok := ParseAmount(field(rec, 2), currency)
	if !ok {
		logger.Get().Debugw("total balance is not a number, using 0", "value", field(rec, 2))
	}
	acc := field(rec, 3)
	if acc == "" {
		acc = NoType
	}
	return Transaction{
		Date:        on,
		Investment:  inv,
		Balance:     bal,
		AccountType: acc,
		Notes:       field(rec, 4),
	}, true
}

// EncodeCSV writes t as CSV with dates in MM/DD/YYYY, in table order.
func EncodeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, tx := range t {
		rec := []string{
			tx.Date.US(),
			tx.Investment.Plain(),
			tx.Balance.Plain(),
			tx.AccountType,
			tx.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
