package tracker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
)

// SheetsBaseURL is the Google Sheets endpoint, replaced in tests.
var SheetsBaseURL = "https://docs.google.com/spreadsheets/d/"

// ErrEmptySheet is returned when a sheet holds no usable transaction.
var ErrEmptySheet = errors.New("sheet has no transactions")

// Sheet is a publicly shared Google Sheet whose first five columns follow Header.
type Sheet struct {
	ID       string
	Currency string
	Client   *http.Client
}

// NewSheet returns the sheet with the given document ID.
func NewSheet(id, currency string) *Sheet {
	return &Sheet{ID: id, Currency: currency}
}

// URL returns the CSV export address of the sheet.
func (s *Sheet) URL() string {
	return SheetsBaseURL + s.ID + "/export?format=csv"
}

func (s *Sheet) String() string { return "Google Sheet " + s.ID }

// Fetch downloads the sheet and returns its transactions sorted by date.
func (s *Sheet) Fetch(ctx context.Context) (Table, error) {
	if s.ID == "" {
		return nil, errors.New("no sheet ID configured")
	}
	body, err := wget(ctx, s.Client, s.URL())
	if err != nil {
		return nil, fmt.Errorf("error loading data from Google Sheet: %w", err)
	}
	t, err := DecodeCSV(bytes.NewReader(body), s.Currency)
	if err != nil {
		return nil, fmt.Errorf("error processing sheet data: %w", err)
	}
	if len(t) == 0 {
		return nil, ErrEmptySheet
	}
	return t.Sorted(), nil
}
