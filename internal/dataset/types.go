package dataset

import (
	"strings"

	"github.com/mehulsinha/offerscout/internal/catalog"
)

// Row is one record of a tabular source, keyed by column header.
type Row map[string]string

// Dataset is a named, ordered collection of rows from one source.
// A dataset that failed to load carries the error and zero rows;
// it degrades to "no offers from this source", never a hard failure.
type Dataset struct {
	Name string
	Rows []Row
	Err  error
}

// Column header aliases. Sources disagree on header spelling, so every
// semantic field is looked up as "first present, non-empty" across its
// alias list.
var (
	TitleFields       = []string{"Offer", "Title"}
	ImageFields       = []string{"Image", "Credit Card Image", "Offer Image", "image", "Image URL"}
	LinkFields        = []string{"Link", "Offer Link"}
	DescriptionFields = []string{"Description", "Details", "Offer Description", "Flight Benefit"}
	WebsiteFields     = []string{"Website", "Site"}

	CreditFields     = []string{"Eligible Credit Cards", "Eligible Cards"}
	DebitFields      = []string{"Eligible Debit Cards", "Applicable Debit Cards"}
	UPIFields        = []string{"UPI"}
	NetBankingFields = []string{"Net Banking"}

	// The permanent (inbuilt benefit) dataset names one credit card per
	// row rather than a list.
	PermanentNameFields    = []string{"Eligible Credit Cards"}
	PermanentBenefitFields = []string{"Grocery Benefits", "Benefit", "Offer", "Hotel Benefit"}
)

// First returns the first present, non-empty value among the aliases.
func (r Row) First(aliases []string) string {
	for _, name := range aliases {
		if v, ok := r[name]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ListFieldsFor maps an entity kind to the list field naming eligible
// instruments of that kind.
func ListFieldsFor(kind catalog.Kind) []string {
	switch kind {
	case catalog.Debit:
		return DebitFields
	case catalog.UPI:
		return UPIFields
	case catalog.NetBanking:
		return NetBankingFields
	default:
		return CreditFields
	}
}
