package browse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehulsinha/offerscout/internal/browse"
	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
)

func sampleCatalogRows() []dataset.Row {
	return []dataset.Row{
		{
			"Eligible Credit Cards": "HDFC Regalia (Visa Signature), HDFC Millennia",
			"Eligible Debit Cards":  "SBI Platinum Debit",
		},
	}
}

func sampleDatasets() []dataset.Dataset {
	return []dataset.Dataset{
		{Name: "Permanent", Rows: []dataset.Row{
			{"Eligible Credit Cards": "HDFC Regalia (Visa Signature)", "Benefit": "Lounge access"},
		}},
		{Name: "Blinkit", Rows: []dataset.Row{
			{
				"Offer":                 "10% off groceries",
				"Eligible Credit Cards": "HDFC Regalia (Visa Signature)",
				"UPI":                   "Google Pay, PhonePe",
			},
		}},
		{Name: "Zepto", Rows: []dataset.Row{
			{
				"Offer":       "Flat 150 off",
				"Net Banking": "HDFC Net Banking",
			},
		}},
	}
}

func TestRecompute(t *testing.T) {
	d := browse.Recompute(sampleCatalogRows(), sampleDatasets(), "Permanent")

	// Credit/debit dropdown entities come from the catalog file.
	credit := d.Catalog.Entities(catalog.Credit)
	require.Len(t, credit, 2)
	assert.Equal(t, "HDFC Millennia", credit[0].Name)
	assert.Equal(t, "HDFC Regalia", credit[1].Name)
	require.Len(t, d.Catalog.Entities(catalog.Debit), 1)

	// UPI / net-banking entities are harvested from offer datasets.
	assert.Len(t, d.Catalog.Entities(catalog.UPI), 2)
	assert.Len(t, d.Catalog.Entities(catalog.NetBanking), 1)

	// Chips come from offer datasets only; the permanent source feeds
	// the credit strip.
	assert.Equal(t, []string{"HDFC Regalia"}, d.Chips[catalog.Credit])
	assert.Empty(t, d.Chips[catalog.Debit], "catalog-file debit cards have no offers")
	assert.Equal(t, []string{"Google Pay", "PhonePe"}, d.Chips[catalog.UPI])
}

func TestReduce_QueryRanksSuggestions(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.DatasetsLoaded{
		CatalogRows: sampleCatalogRows(),
		Datasets:    sampleDatasets(),
	})

	s = r.Reduce(s, browse.QueryChanged{Query: "regalia"})
	require.NotEmpty(t, s.Sections)
	assert.False(t, s.NoMatches)
	assert.Equal(t, "HDFC Regalia", s.Sections[0].Items[0].Entity.Name)
}

func TestReduce_EmptyQueryClearsWithoutNoMatches(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.DatasetsLoaded{CatalogRows: sampleCatalogRows()})
	s = r.Reduce(s, browse.QueryChanged{Query: "regalia"})
	s = r.Reduce(s, browse.QueryChanged{Query: "   "})

	assert.Empty(t, s.Sections)
	assert.False(t, s.NoMatches)
}

func TestReduce_ZeroDatasetsYieldsNoMatches(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.QueryChanged{Query: "regalia"})

	assert.True(t, s.NoMatches)
	assert.Empty(t, s.Sections)
}

func TestReduce_SelectionResolvesOffers(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.DatasetsLoaded{
		CatalogRows: sampleCatalogRows(),
		Datasets:    sampleDatasets(),
	})

	entity, ok := s.Derived.Catalog.Lookup(catalog.Credit, "hdfc regalia")
	require.True(t, ok)

	s = r.Reduce(s, browse.EntitySelected{Entity: entity})
	assert.Equal(t, "HDFC Regalia", s.Query)
	assert.Empty(t, s.Sections)
	require.True(t, s.HasOffers())

	// Permanent group first (credit selection), then retail.
	assert.Equal(t, "Permanent", s.Offers[0].Source)
	assert.Equal(t, "Blinkit", s.Offers[1].Source)
}

func TestReduce_SelectionWithNoOffersIsNotNoMatches(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.DatasetsLoaded{
		CatalogRows: sampleCatalogRows(),
		Datasets:    sampleDatasets(),
	})

	entity, ok := s.Derived.Catalog.Lookup(catalog.Credit, "hdfc millennia")
	require.True(t, ok)
	s = r.Reduce(s, browse.EntitySelected{Entity: entity})

	assert.False(t, s.NoMatches)
	assert.False(t, s.HasOffers())
}

func TestReduce_LoadRefreshesCurrentSelection(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.DatasetsLoaded{
		CatalogRows: sampleCatalogRows(),
		Datasets:    sampleDatasets(),
	})
	entity, ok := s.Derived.Catalog.Lookup(catalog.Credit, "hdfc regalia")
	require.True(t, ok)
	s = r.Reduce(s, browse.EntitySelected{Entity: entity})
	require.True(t, s.HasOffers())

	// A reload with empty datasets drops the offers for the selection.
	s = r.Reduce(s, browse.DatasetsLoaded{CatalogRows: sampleCatalogRows()})
	assert.False(t, s.HasOffers())
}

func TestReduce_NewQueryDiscardsSelection(t *testing.T) {
	r := browse.NewReducer()
	s := r.Reduce(browse.State{}, browse.DatasetsLoaded{
		CatalogRows: sampleCatalogRows(),
		Datasets:    sampleDatasets(),
	})
	entity, ok := s.Derived.Catalog.Lookup(catalog.Credit, "hdfc regalia")
	require.True(t, ok)
	s = r.Reduce(s, browse.EntitySelected{Entity: entity})

	s = r.Reduce(s, browse.QueryChanged{Query: "millennia"})
	assert.Nil(t, s.Selected)
	assert.Empty(t, s.Offers)
	require.NotEmpty(t, s.Sections)
}
