package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CatalogFile is the instrument catalog within a data directory. It
// feeds the credit/debit dropdown entries and is not an offer source.
const CatalogFile = "allCards.csv"

// Source describes one CSV-backed offer dataset.
type Source struct {
	// Name is the display name, also used in dedup priority lists.
	Name string
	// File is the CSV file name within the data directory.
	File string
	// Permanent marks the inbuilt-benefit source, consulted only for
	// credit selections.
	Permanent bool
}

// DefaultSources lists the shipped sources in dedup priority order:
// the permanent source first, then the retail sources in fixed order.
func DefaultSources() []Source {
	return []Source{
		{Name: "Permanent", File: "permanent_offers.csv", Permanent: true},
		{Name: "Blinkit", File: "blinkit.csv"},
		{Name: "Swiggy Instamart", File: "swiggy_instamart.csv"},
		{Name: "Zepto", File: "zepto.csv"},
		{Name: "BigBasket", File: "bigbasket.csv"},
	}
}

// Load reads one CSV file into a dataset. The first record is the
// header; rows map header names to cell text. Ragged rows are accepted
// and short rows simply lack the trailing columns.
func Load(ctx context.Context, path, name string) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{Name: name}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Dataset{Name: name}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return Dataset{Name: name}, fmt.Errorf("parsing dataset %s: %w", name, err)
	}
	if len(records) == 0 {
		return Dataset{Name: name}, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		empty := true
		for i, cell := range rec {
			if i >= len(header) {
				break
			}
			row[strings.TrimSpace(header[i])] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return Dataset{Name: name, Rows: rows}, nil
}

// LoadAll reads every source concurrently from dir. Loads are
// independent: a source that fails yields an empty dataset carrying its
// error and never blocks or aborts its siblings. Results come back in
// source order.
func LoadAll(ctx context.Context, dir string, sources []Source) []Dataset {
	out := make([]Dataset, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			ds, err := Load(ctx, filepath.Join(dir, src.File), src.Name)
			if err != nil {
				out[i] = Dataset{Name: src.Name, Err: err}
				return nil
			}
			out[i] = ds
			return nil
		})
	}
	// Goroutines never return errors; failures degrade per dataset.
	_ = g.Wait()
	return out
}

// LoadCatalog reads the instrument catalog file from dir. Callers
// treat a failed load like any failed offer source: the credit/debit
// pools stay empty, and UPI and net-banking entities are still derived
// from the offer datasets.
func LoadCatalog(ctx context.Context, dir string) ([]Row, error) {
	ds, err := Load(ctx, filepath.Join(dir, CatalogFile), "Catalog")
	if err != nil {
		return nil, err
	}
	return ds.Rows, nil
}
