package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehulsinha/offerscout/internal/catalog"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HDFC Regalia", "hdfc regalia"},
		{"  spaced   out  ", "spaced out"},
		{"Punctuation, (lots)! of-it", "punctuation lots of it"},
		{"Tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
		{"   ", ""},
		{"under_score kept", "under_score kept"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"HDFC Regalia (Visa Signature)", "Café", "  a,b  c  ", "ICICI Amazon Pay!"}
	for _, in := range inputs {
		once := catalog.Normalize(in)
		assert.Equal(t, once, catalog.Normalize(once), "Normalize(Normalize(%q))", in)
	}
}

func TestNormalize_DiacriticInsensitive(t *testing.T) {
	assert.Equal(t, catalog.Normalize("cafe"), catalog.Normalize("Café"))
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com/offers/", "example.com/offers"},
		{"http://Example.com", "example.com"},
		{"https:///broken.example.com", "broken.example.com"},
		{"www.example.com", "example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.NormalizeURL(tt.input), "NormalizeURL(%q)", tt.input)
	}
}
