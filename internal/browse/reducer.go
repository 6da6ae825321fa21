package browse

import (
	"strings"

	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
	"github.com/mehulsinha/offerscout/internal/resolver"
)

// State is one immutable view-state snapshot. Every user interaction
// produces a fresh value; nothing in here is shared or mutated.
type State struct {
	Query    string
	Sections []catalog.Section
	// NoMatches is the "query matched nothing anywhere" signal, distinct
	// from an empty query and from a valid selection with zero offers.
	NoMatches bool
	Selected  *catalog.Entity
	Offers    []resolver.Group

	CatalogRows []dataset.Row
	Datasets    []dataset.Dataset
	Derived     Derived
}

// HasOffers reports whether the current selection found any offers.
func (s State) HasOffers() bool { return len(s.Offers) > 0 }

// Event is a user interaction or data arrival fed to Reduce.
type Event interface{ isEvent() }

// QueryChanged carries a keystroke's worth of new query text.
type QueryChanged struct{ Query string }

// EntitySelected carries the instrument the user picked.
type EntitySelected struct{ Entity catalog.Entity }

// DatasetsLoaded carries a completed load of the catalog file and offer
// datasets; each completed load replaces the previous snapshot wholesale.
type DatasetsLoaded struct {
	CatalogRows []dataset.Row
	Datasets    []dataset.Dataset
}

func (QueryChanged) isEvent()   {}
func (EntitySelected) isEvent() {}
func (DatasetsLoaded) isEvent() {}

// Reducer owns the engine configuration and folds events into states.
type Reducer struct {
	Config  catalog.Config
	Options resolver.Options
}

// NewReducer returns a reducer with production defaults.
func NewReducer() Reducer {
	return Reducer{Config: catalog.DefaultConfig(), Options: resolver.DefaultOptions()}
}

// Reduce returns the next state for an event. Pure: the input state is
// never modified, and the same (state, event) pair always yields the
// same result.
func (r Reducer) Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case DatasetsLoaded:
		s.CatalogRows = ev.CatalogRows
		s.Datasets = ev.Datasets
		s.Derived = Recompute(ev.CatalogRows, ev.Datasets, r.Options.PermanentSource)
		// Data changed under the current interaction: re-run whatever
		// derived view the user is looking at.
		if s.Selected != nil {
			s.Offers = resolver.Resolve(*s.Selected, s.Datasets, r.Options)
		} else if strings.TrimSpace(s.Query) != "" {
			s = r.rerank(s)
		}
		return s

	case QueryChanged:
		s.Query = ev.Query
		s.Selected = nil
		s.Offers = nil
		if strings.TrimSpace(ev.Query) == "" {
			s.Sections = nil
			s.NoMatches = false
			return s
		}
		return r.rerank(s)

	case EntitySelected:
		entity := ev.Entity
		s.Selected = &entity
		s.Query = entity.Name
		s.Sections = nil
		s.NoMatches = false
		s.Offers = resolver.Resolve(entity, s.Datasets, r.Options)
		return s
	}
	return s
}

func (r Reducer) rerank(s State) State {
	if s.Derived.Catalog == nil {
		s.Derived.Catalog = catalog.NewCatalog()
	}
	sections, ok := catalog.Rank(s.Derived.Catalog, s.Query, r.Config)
	s.Sections = sections
	s.NoMatches = !ok
	return s
}
