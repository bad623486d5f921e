package tracker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/teecush/tracker/logger"
)

// Source produces a transaction table.
type Source interface {
	Fetch(ctx context.Context) (Table, error)
	String() string
}

// Loaded is the outcome of Load.
type Loaded struct {
	Table    Table
	Origin   string   // where the table finally came from, "" when it is empty
	Warnings []string // what went wrong on the way, for display
}

// Load fetches the table from primary and keeps backup in sync with it.
//
// When primary fails, the table is read from backup instead. When both fail, Load
// returns an empty table. Failures are reported as warnings, not errors, so that
// the caller always has something to show.
func Load(ctx context.Context, primary Source, backup *Store) Loaded {
	log := logger.Get()
	var res Loaded

	if primary != nil {
		t, err := primary.Fetch(ctx)
		if err == nil {
			res.Table, res.Origin = t, primary.String()
			if backup != nil {
				if err := backup.Save(t); err != nil {
					log.Warnw("could not save backup", "path", backup.Path, "error", err)
					res.Warnings = append(res.Warnings, fmt.Sprintf("Could not save a local backup: %v", err))
				}
			}
			return res
		}
		log.Warnw("primary source failed", "source", primary.String(), "error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("Error loading data from %s: %v", primary, err))
	}

	if backup != nil {
		t, err := backup.Load()
		if err == nil {
			res.Table, res.Origin = t, backup.String()
			if primary != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("Loaded data from local backup %s.", backup))
			}
			return res
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warnw("backup failed", "path", backup.Path, "error", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("Error loading local backup: %v", err))
		}
	}

	res.Table = Table{}
	res.Warnings = append(res.Warnings, "Could not load any data. Starting with empty data.")
	return res
}
