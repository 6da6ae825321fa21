package catalog

import (
	"sort"
	"strings"
)

// Suggestion pairs an entity with its combined match score. Suggestions
// are recomputed per keystroke and never persisted.
type Suggestion struct {
	Entity Entity
	Score  float64
}

// Section is one kind's ranked suggestions, headed by the kind label.
type Section struct {
	Kind  Kind
	Label string
	Items []Suggestion
}

// Rank scores every catalog entity against the query and assembles the
// sectioned suggestion list. Each kind ranks independently; only kinds
// with at least one surviving candidate produce a section. ok is false
// when all kinds come up empty, the caller's "no matches" signal.
func Rank(cat *Catalog, query string, cfg Config) (sections []Section, ok bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, false
	}

	intent := cfg.ClassifyIntent(trimmed)

	perKind := make(map[Kind][]Suggestion, 4)
	any := false
	for _, kind := range Kinds() {
		items := rankKind(cat.Entities(kind), trimmed, cfg)
		if len(items) > 0 {
			any = true
		}
		if intent.Select {
			items = promoteSelect(items)
		}
		perKind[kind] = items
	}
	if !any {
		return nil, false
	}

	for _, kind := range intent.SectionOrder() {
		items := perKind[kind]
		if len(items) == 0 {
			continue
		}
		sections = append(sections, Section{Kind: kind, Label: kind.Label(), Items: items})
	}
	return sections, true
}

func rankKind(entities []Entity, trimmed string, cfg Config) []Suggestion {
	qLower := strings.ToLower(trimmed)

	kept := make([]Suggestion, 0, len(entities))
	for _, e := range entities {
		score := Score(trimmed, e.Name)
		substring := strings.Contains(strings.ToLower(e.Name), qLower)
		fuzzy := cfg.IsFuzzyMatch(trimmed, e.Name)

		if substring {
			score += cfg.SubstringBoost
		}
		if fuzzy {
			score += cfg.FuzzyBoost
		}
		if !substring && !fuzzy && score <= cfg.ScoreFloor {
			continue
		}
		kept = append(kept, Suggestion{Entity: e, Score: score})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].Entity.Name < kept[j].Entity.Name
	})

	if cfg.MaxSuggestions > 0 && len(kept) > cfg.MaxSuggestions {
		kept = kept[:cfg.MaxSuggestions]
	}
	return kept
}

// promoteSelect stably partitions a ranked list so entities whose
// normalized name contains "select" come first, relative order otherwise
// preserved.
func promoteSelect(items []Suggestion) []Suggestion {
	if len(items) == 0 {
		return items
	}
	selects := make([]Suggestion, 0, len(items))
	others := make([]Suggestion, 0, len(items))
	for _, it := range items {
		if strings.Contains(it.Entity.Key, "select") {
			selects = append(selects, it)
		} else {
			others = append(others, it)
		}
	}
	return append(selects, others...)
}
