package catalog

import "sort"

// Kind partitions entities and offers into independent matching pools.
type Kind int

const (
	Credit Kind = iota
	Debit
	UPI
	NetBanking
)

// Kinds returns every kind in default section order.
func Kinds() []Kind {
	return []Kind{Credit, Debit, UPI, NetBanking}
}

func (k Kind) String() string {
	switch k {
	case Credit:
		return "credit"
	case Debit:
		return "debit"
	case UPI:
		return "upi"
	case NetBanking:
		return "netbanking"
	default:
		return "unknown"
	}
}

// Label is the section heading shown for the kind.
func (k Kind) Label() string {
	switch k {
	case Credit:
		return "Credit Cards"
	case Debit:
		return "Debit Cards"
	case UPI:
		return "UPI"
	case NetBanking:
		return "Net Banking"
	default:
		return "Other"
	}
}

// ParseKind resolves user-facing spellings of a kind.
func ParseKind(raw string) (Kind, bool) {
	switch Normalize(raw) {
	case "credit", "credit card", "credit cards", "cc":
		return Credit, true
	case "debit", "debit card", "debit cards", "dc":
		return Debit, true
	case "upi":
		return UPI, true
	case "netbanking", "net banking", "nb":
		return NetBanking, true
	default:
		return Credit, false
	}
}

// Entity is a canonical payment instrument: a card or provider identified
// by kind plus normalized name. Key is Normalize(Name).
type Entity struct {
	Kind Kind
	Name string
	Key  string
}

// Catalog is the canonical entity set, keyed by (kind, normalized key).
// Re-inserting an existing key merges: the first-seen display name wins.
// Built once per data load, read-only afterwards.
type Catalog struct {
	entries map[Kind]map[string]Entity
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[Kind]map[string]Entity)}
}

// Add registers one raw mention under the given kind. The mention's
// trailing variant is discarded; variants belong to offer matches, not
// to entity identity.
func (c *Catalog) Add(kind Kind, rawName string) {
	name := DisplayName(rawName)
	key := Normalize(name)
	if key == "" {
		return
	}
	byKey := c.entries[kind]
	if byKey == nil {
		byKey = make(map[string]Entity)
		c.entries[kind] = byKey
	}
	if _, exists := byKey[key]; exists {
		return
	}
	byKey[key] = Entity{Kind: kind, Name: name, Key: key}
}

// Lookup finds an entity by kind and normalized key.
func (c *Catalog) Lookup(kind Kind, key string) (Entity, bool) {
	e, ok := c.entries[kind][key]
	return e, ok
}

// Entities returns the kind's entities sorted by display name.
func (c *Catalog) Entities(kind Kind) []Entity {
	byKey := c.entries[kind]
	out := make([]Entity, 0, len(byKey))
	for _, e := range byKey {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len counts entities across all kinds.
func (c *Catalog) Len() int {
	total := 0
	for _, byKey := range c.entries {
		total += len(byKey)
	}
	return total
}
