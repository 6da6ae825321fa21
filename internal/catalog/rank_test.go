package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehulsinha/offerscout/internal/catalog"
)

func sampleCatalog() *catalog.Catalog {
	cat := catalog.NewCatalog()
	cat.Add(catalog.Credit, "HDFC Regalia (Visa Signature)")
	cat.Add(catalog.Credit, "HDFC Millennia")
	cat.Add(catalog.Credit, "Axis Select")
	cat.Add(catalog.Credit, "ICICI Amazon Pay")
	cat.Add(catalog.Debit, "HDFC Millennia Debit")
	cat.Add(catalog.Debit, "SBI Platinum Debit")
	cat.Add(catalog.UPI, "Google Pay")
	cat.Add(catalog.NetBanking, "HDFC Net Banking")
	return cat
}

func sectionFor(t *testing.T, sections []catalog.Section, kind catalog.Kind) catalog.Section {
	t.Helper()
	for _, s := range sections {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("no section for kind %s", kind)
	return catalog.Section{}
}

func TestRank_RegaliaRanksAboveMillennia(t *testing.T) {
	sections, ok := catalog.Rank(sampleCatalog(), "regalia", catalog.DefaultConfig())
	require.True(t, ok)

	credit := sectionFor(t, sections, catalog.Credit)
	require.NotEmpty(t, credit.Items)
	assert.Equal(t, "HDFC Regalia", credit.Items[0].Entity.Name)
	for _, item := range credit.Items[1:] {
		assert.Less(t, item.Score, credit.Items[0].Score)
	}
}

func TestRank_NoMatchesSignal(t *testing.T) {
	sections, ok := catalog.Rank(sampleCatalog(), "qqqqqqqq", catalog.DefaultConfig())
	assert.False(t, ok)
	assert.Empty(t, sections)
}

func TestRank_EmptyCatalog(t *testing.T) {
	_, ok := catalog.Rank(catalog.NewCatalog(), "regalia", catalog.DefaultConfig())
	assert.False(t, ok)
}

func TestRank_EmptyQuery(t *testing.T) {
	_, ok := catalog.Rank(sampleCatalog(), "   ", catalog.DefaultConfig())
	assert.False(t, ok)
}

func TestRank_TruncatesToMaxSuggestions(t *testing.T) {
	cat := catalog.NewCatalog()
	for i := 0; i < 60; i++ {
		cat.Add(catalog.Credit, fmt.Sprintf("Rewards Card %02d", i))
	}

	sections, ok := catalog.Rank(cat, "rewards", catalog.DefaultConfig())
	require.True(t, ok)
	credit := sectionFor(t, sections, catalog.Credit)
	assert.Len(t, credit.Items, 50)
}

func TestRank_SelectIntentSurvivesTypo(t *testing.T) {
	// "selct" is edit distance 1 from "select"; the intent classifier
	// still fires and Select-branded cards float to the top.
	sections, ok := catalog.Rank(sampleCatalog(), "selct card", catalog.DefaultConfig())
	require.True(t, ok)

	credit := sectionFor(t, sections, catalog.Credit)
	require.NotEmpty(t, credit.Items)
	assert.Equal(t, "Axis Select", credit.Items[0].Entity.Name)
}

func TestRank_DebitIntentOrdersSectionsDebitFirst(t *testing.T) {
	sections, ok := catalog.Rank(sampleCatalog(), "hdfc debit", catalog.DefaultConfig())
	require.True(t, ok)
	require.NotEmpty(t, sections)
	assert.Equal(t, catalog.Debit, sections[0].Kind)

	// Remaining sections keep the debit-intent order: credit before the rest.
	kinds := []catalog.Kind{}
	for _, s := range sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, catalog.Credit, kinds[1])
}

func TestRank_UPIIntent(t *testing.T) {
	sections, ok := catalog.Rank(sampleCatalog(), "upi pay", catalog.DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, catalog.UPI, sections[0].Kind)
}

func TestRank_OnlyNonEmptySectionsAppear(t *testing.T) {
	sections, ok := catalog.Rank(sampleCatalog(), "google", catalog.DefaultConfig())
	require.True(t, ok)
	for _, s := range sections {
		assert.NotEmpty(t, s.Items, "section %s should not be empty", s.Label)
	}
}

func TestRank_TiesBreakLexicographically(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Add(catalog.Credit, "Beta Travel")
	cat.Add(catalog.Credit, "Alpha Travel")

	sections, ok := catalog.Rank(cat, "travel", catalog.DefaultConfig())
	require.True(t, ok)
	credit := sectionFor(t, sections, catalog.Credit)
	require.Len(t, credit.Items, 2)
	assert.Equal(t, "Alpha Travel", credit.Items[0].Entity.Name)
	assert.Equal(t, "Beta Travel", credit.Items[1].Entity.Name)
}
