package tracker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoTransaction is returned when deleting at an index outside of the log.
var ErrNoTransaction = errors.New("no such transaction")

// Store persists a table in a single CSV file. The last write wins.
type Store struct {
	Path     string
	Currency string
}

// NewStore returns a store on path, amounts are read in currency.
func NewStore(path, currency string) *Store {
	return &Store{Path: path, Currency: currency}
}

func (s *Store) String() string { return s.Path }

// Load reads the whole table. A missing file is reported as an error matching fs.ErrNotExist.
func (s *Store) Load() (Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open data file %q: %w", s.Path, err)
	}
	defer f.Close()

	t, err := DecodeCSV(f, s.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode data file %q: %w", s.Path, err)
	}
	return t, nil
}

// Fetch implements Source.
func (s *Store) Fetch(context.Context) (Table, error) { return s.Load() }

// Save replaces the file content with t.
func (s *Store) Save(t Table) error {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, t); err != nil {
		return fmt.Errorf("could not encode transactions: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create data directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write data file %q: %w", s.Path, err)
	}
	return nil
}

// LoadOrEmpty is Load, except that a missing file is an empty table.
func (s *Store) LoadOrEmpty() (Table, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return Table{}, nil
	}
	return s.Load()
}

// Append adds tx to the stored table and saves it sorted by date.
func (s *Store) Append(tx Transaction) (Table, error) {
	t, err := s.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	t = append(t, tx).Sorted()
	return t, s.Save(t)
}

// Delete removes the transaction at the 1-based index of the newest-first log.
func (s *Store) Delete(index int) (Transaction, Table, error) {
	t, err := s.Load()
	if err != nil {
		return Transaction{}, nil, err
	}
	log := t.Log()
	if index < 1 || index > len(log) {
		return Transaction{}, nil, fmt.Errorf("%w at index %d, the log has %d", ErrNoTransaction, index, len(log))
	}
	removed := log[index-1]
	rest := append(log[:index-1:index-1], log[index:]...)
	rest = rest.Sorted()
	return removed, rest, s.Save(rest)
}

// Import merges the CSV content of r into the stored table.
// It returns the merged table and the number of rows actually added.
func (s *Store) Import(r io.Reader) (Table, int, error) {
	imported, err := DecodeCSV(r, s.Currency)
	if err != nil {
		return nil, 0, fmt.Errorf("could not import transactions, please ensure the CSV file matches the expected format: %w", err)
	}
	t, err := s.LoadOrEmpty()
	if err != nil {
		return nil, 0, err
	}
	merged := Merge(t, imported)
	added := len(merged) - len(Merge(t, nil))
	return merged, added, s.Save(merged)
}
