package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehulsinha/offerscout/internal/catalog"
)

func TestCatalog_AddMergesOnNormalizedKey(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Add(catalog.Credit, "HDFC Regalia (Visa Signature)")
	cat.Add(catalog.Credit, "hdfc regalia")
	cat.Add(catalog.Credit, "HDFC  Regalia!")

	entities := cat.Entities(catalog.Credit)
	assert.Len(t, entities, 1)
	// First-seen display name wins; the variant never reaches identity.
	assert.Equal(t, "HDFC Regalia", entities[0].Name)
	assert.Equal(t, "hdfc regalia", entities[0].Key)
}

func TestCatalog_KindsAreIndependentPools(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Add(catalog.Credit, "SBI Cashback")
	cat.Add(catalog.Debit, "SBI Cashback")

	assert.Len(t, cat.Entities(catalog.Credit), 1)
	assert.Len(t, cat.Entities(catalog.Debit), 1)
	assert.Equal(t, 2, cat.Len())
}

func TestCatalog_Lookup(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Add(catalog.UPI, "Google Pay")

	e, ok := cat.Lookup(catalog.UPI, "google pay")
	assert.True(t, ok)
	assert.Equal(t, "Google Pay", e.Name)

	_, ok = cat.Lookup(catalog.Credit, "google pay")
	assert.False(t, ok)
}

func TestCatalog_AddIgnoresEmptyNames(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Add(catalog.Credit, "   ")
	cat.Add(catalog.Credit, "(Only Variant)")
	assert.Equal(t, 0, cat.Len())
}

func TestCatalog_EntitiesSortedByName(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Add(catalog.Credit, "Zeta Card")
	cat.Add(catalog.Credit, "Alpha Card")
	cat.Add(catalog.Credit, "Mid Card")

	names := []string{}
	for _, e := range cat.Entities(catalog.Credit) {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Alpha Card", "Mid Card", "Zeta Card"}, names)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  catalog.Kind
		ok    bool
	}{
		{"credit", catalog.Credit, true},
		{"Credit Cards", catalog.Credit, true},
		{"dc", catalog.Debit, true},
		{"UPI", catalog.UPI, true},
		{"net banking", catalog.NetBanking, true},
		{"netbanking", catalog.NetBanking, true},
		{"wallet", catalog.Credit, false},
	}
	for _, tt := range tests {
		got, ok := catalog.ParseKind(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseKind(%q) ok", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseKind(%q)", tt.input)
		}
	}
}
