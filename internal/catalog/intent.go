package catalog

import "strings"

// PaymentIntent is the payment-kind hint detected in a query. It decides
// section order in the final suggestion list, never which kinds appear.
type PaymentIntent int

const (
	IntentDefault PaymentIntent = iota
	IntentDebit
	IntentUPI
	IntentNetBanking
)

// Intent classifies a free-text query. Computed once per query so the
// ranker never inspects query text itself.
type Intent struct {
	// Select means the user is after "Select"-branded cards; those are
	// promoted to the front of every kind's list.
	Select bool
	// Payment reorders the sections.
	Payment PaymentIntent
}

// ClassifyIntent detects both intents for a query. Select intent
// tolerates near-miss spellings ("selct", "slect") via per-word
// similarity against the literal word "select".
func (c Config) ClassifyIntent(query string) Intent {
	trimmed := strings.TrimSpace(query)
	qNorm := Normalize(trimmed)
	qLower := strings.ToLower(trimmed)

	hasSelectWord := false
	for _, w := range strings.Fields(qNorm) {
		if w == "select" {
			hasSelectWord = true
			break
		}
		if len(w) < c.MinWordLen {
			continue
		}
		if Similarity(w, "select") >= c.WordSimilarity {
			hasSelectWord = true
			break
		}
	}

	intent := Intent{
		Select: strings.Contains(qNorm, "select credit card") ||
			strings.Contains(qNorm, "select card") ||
			hasSelectWord,
	}

	switch {
	case strings.Contains(qLower, "upi"):
		intent.Payment = IntentUPI
	case strings.Contains(qLower, "net banking"),
		strings.Contains(qLower, "netbanking"),
		strings.Contains(qLower, "nb"):
		intent.Payment = IntentNetBanking
	case strings.Contains(qLower, "debit card"),
		strings.Contains(qLower, "debit"),
		strings.Contains(qLower, "dc"):
		intent.Payment = IntentDebit
	}

	return intent
}

// SectionOrder is the kind ordering the detected payment intent implies.
func (i Intent) SectionOrder() []Kind {
	switch i.Payment {
	case IntentUPI:
		return []Kind{UPI, NetBanking, Credit, Debit}
	case IntentNetBanking:
		return []Kind{NetBanking, UPI, Credit, Debit}
	case IntentDebit:
		return []Kind{Debit, Credit, UPI, NetBanking}
	default:
		return []Kind{Credit, Debit, UPI, NetBanking}
	}
}
