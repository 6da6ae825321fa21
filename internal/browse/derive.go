// Package browse holds the interaction layer: derived state rebuilt on
// every data load, and a reducer that turns user events into immutable
// view-state snapshots. All of it is pure; rendering and I/O live
// elsewhere.
package browse

import (
	"sort"

	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
)

// Derived is everything recomputed from the loaded data. Dataset sizes
// are small, so a full rebuild on any input change beats incremental
// bookkeeping.
type Derived struct {
	// Catalog holds the searchable entities: credit/debit instruments
	// from the catalog file, UPI and net-banking providers harvested
	// from the offer datasets.
	Catalog *catalog.Catalog
	// Chips lists, per kind, the instruments that actually appear in
	// offer datasets — the "these have offers right now" strips. Built
	// from offer sources only, never from the catalog file.
	Chips map[catalog.Kind][]string
}

// Recompute rebuilds the derived state from the current inputs.
func Recompute(catalogRows []dataset.Row, datasets []dataset.Dataset, permanentSource string) Derived {
	cat := catalog.NewCatalog()

	for _, row := range catalogRows {
		for _, raw := range catalog.SplitList(row.First(dataset.CreditFields)) {
			cat.Add(catalog.Credit, raw)
		}
		for _, raw := range catalog.SplitList(row.First(dataset.DebitFields)) {
			cat.Add(catalog.Debit, raw)
		}
	}

	chipSets := map[catalog.Kind]map[string]string{
		catalog.Credit:     {},
		catalog.Debit:      {},
		catalog.UPI:        {},
		catalog.NetBanking: {},
	}
	harvest := func(kind catalog.Kind, val string) {
		for _, raw := range catalog.SplitList(val) {
			name := catalog.DisplayName(raw)
			key := catalog.Normalize(name)
			if key == "" {
				continue
			}
			if _, seen := chipSets[kind][key]; !seen {
				chipSets[kind][key] = name
			}
		}
	}

	for _, ds := range datasets {
		if ds.Name == permanentSource {
			// The permanent source names one credit card per row and
			// feeds only the credit strip.
			for _, row := range ds.Rows {
				harvest(catalog.Credit, row.First(dataset.PermanentNameFields))
			}
			continue
		}
		for _, row := range ds.Rows {
			harvest(catalog.Credit, row.First(dataset.CreditFields))
			harvest(catalog.Debit, row.First(dataset.DebitFields))
			harvest(catalog.UPI, row.First(dataset.UPIFields))
			harvest(catalog.NetBanking, row.First(dataset.NetBankingFields))
		}
	}

	// UPI and net-banking dropdown entries come from the offer datasets;
	// the catalog file does not carry them.
	for key := range chipSets[catalog.UPI] {
		cat.Add(catalog.UPI, chipSets[catalog.UPI][key])
	}
	for key := range chipSets[catalog.NetBanking] {
		cat.Add(catalog.NetBanking, chipSets[catalog.NetBanking][key])
	}

	chips := make(map[catalog.Kind][]string, len(chipSets))
	for kind, set := range chipSets {
		names := make([]string, 0, len(set))
		for _, name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		chips[kind] = names
	}

	return Derived{Catalog: cat, Chips: chips}
}
