// Package resolver finds every offer referencing a selected entity
// across the loaded datasets, deduplicates them, and groups them by
// source.
package resolver

import (
	"strings"

	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
)

// Match is one offer row that references the selected entity. Variant
// is the qualifier captured from the matching mention ("Visa
// Signature"), empty when the mention carried none.
type Match struct {
	Row     dataset.Row
	Source  string
	Variant string
}

// Group is every surviving match from one source, in row order.
type Group struct {
	Source    string
	Permanent bool
	Matches   []Match
}

// Options configures resolution. Priority is explicit because it
// decides which source wins a duplicate.
type Options struct {
	// Priority lists source names in dedup order; sources missing from
	// the loaded datasets are skipped, datasets missing from Priority
	// are ignored.
	Priority []string
	// PermanentSource names the inbuilt-benefit source. It is consulted
	// only when the selected entity is a credit card.
	PermanentSource string
	// VariantNoteSources are the sources allowed to surface a captured
	// variant as a qualifier note.
	VariantNoteSources []string
}

// DefaultOptions mirrors the shipped source set and the variant-note
// allow-list.
func DefaultOptions() Options {
	priority := make([]string, 0, len(dataset.DefaultSources()))
	for _, src := range dataset.DefaultSources() {
		priority = append(priority, src.Name)
	}
	return Options{
		Priority:        priority,
		PermanentSource: "Permanent",
		VariantNoteSources: []string{
			"EaseMyTrip",
			"Yatra (Domestic)",
			"Yatra (International)",
			"Ixigo",
			"MakeMyTrip",
			"ClearTrip",
			"Goibibo",
			"Airline",
			"Permanent",
			"Blinkit",
			"Swiggy Instamart",
		},
	}
}

// ShowVariant reports whether the match's variant should be surfaced as
// a qualifier note: the source must be on the allow-list and a variant
// must have been captured.
func (o Options) ShowVariant(m Match) bool {
	if strings.TrimSpace(m.Variant) == "" {
		return false
	}
	for _, s := range o.VariantNoteSources {
		if s == m.Source {
			return true
		}
	}
	return false
}

// Resolve walks the datasets in priority order and returns the grouped,
// deduplicated offers for the entity. The dedup seen-set is shared
// across all sources, so a duplicate in a later source is dropped and
// the earlier source keeps it. Only non-empty groups are returned; an
// empty result means "no offers for this entity", which is a valid
// user-visible state, not an error.
func Resolve(entity catalog.Entity, datasets []dataset.Dataset, opts Options) []Group {
	byName := make(map[string]dataset.Dataset, len(datasets))
	for _, ds := range datasets {
		byName[ds.Name] = ds
	}

	seen := make(map[string]struct{})
	groups := make([]Group, 0, len(opts.Priority))
	for _, name := range opts.Priority {
		ds, ok := byName[name]
		if !ok {
			continue
		}
		permanent := name == opts.PermanentSource
		if permanent && entity.Kind != catalog.Credit {
			continue
		}

		matches := matchRows(entity, ds, permanent)
		deduped := make([]Match, 0, len(matches))
		for _, m := range matches {
			key := offerKey(m.Row)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			deduped = append(deduped, m)
		}
		if len(deduped) > 0 {
			groups = append(groups, Group{Source: name, Permanent: permanent, Matches: deduped})
		}
	}
	return groups
}

// matchRows collects the rows whose list field mentions the entity. The
// first matching mention in a row wins and contributes its variant,
// even when later mentions in the same row also match.
func matchRows(entity catalog.Entity, ds dataset.Dataset, permanent bool) []Match {
	out := make([]Match, 0)
	for _, row := range ds.Rows {
		var mentions []string
		if permanent {
			if nm := row.First(dataset.PermanentNameFields); nm != "" {
				mentions = []string{nm}
			}
		} else {
			mentions = catalog.SplitList(row.First(dataset.ListFieldsFor(entity.Kind)))
		}

		for _, raw := range mentions {
			if catalog.Normalize(catalog.DisplayName(raw)) != entity.Key {
				continue
			}
			out = append(out, Match{
				Row:     row,
				Source:  ds.Name,
				Variant: catalog.Variant(raw),
			})
			break
		}
	}
	return out
}

// offerKey is the composite duplicate-detection identity: normalized
// title, description, image URL, and link. The same underlying offer
// appearing in two datasets produces the same key.
func offerKey(row dataset.Row) string {
	title := row.First(dataset.TitleFields)
	if title == "" {
		title = row.First(dataset.WebsiteFields)
	}
	return strings.Join([]string{
		catalog.Normalize(title),
		catalog.Normalize(row.First(dataset.DescriptionFields)),
		catalog.NormalizeURL(row.First(dataset.ImageFields)),
		catalog.NormalizeURL(row.First(dataset.LinkFields)),
	}, "||")
}
