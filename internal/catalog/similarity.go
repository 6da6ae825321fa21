package catalog

import (
	"math"
	"strings"
)

// Config carries the matching thresholds and ranking knobs. The default
// values are empirically tuned; treat them as opaque rather than derived.
type Config struct {
	// WholeSimilarity is the minimum whole-string similarity for a fuzzy match.
	WholeSimilarity float64
	// WordSimilarity is the minimum per-word similarity for a fuzzy match
	// and for select-intent detection.
	WordSimilarity float64
	// MinWordLen is the shortest word considered for per-word comparison.
	MinWordLen int
	// ScoreFloor drops candidates that are neither substring nor fuzzy
	// matches and score at or below it.
	ScoreFloor float64
	// SubstringBoost is added when the candidate name contains the raw
	// case-folded query.
	SubstringBoost float64
	// FuzzyBoost is added when the fuzzy predicate holds.
	FuzzyBoost float64
	// MaxSuggestions caps each kind's ranked list.
	MaxSuggestions int
}

// DefaultConfig returns the tuned production values.
func DefaultConfig() Config {
	return Config{
		WholeSimilarity: 0.6,
		WordSimilarity:  0.7,
		MinWordLen:      3,
		ScoreFloor:      0.3,
		SubstringBoost:  2.0,
		FuzzyBoost:      1.5,
		MaxSuggestions:  50,
	}
}

// Distance is the Levenshtein edit distance between the normalized forms
// of a and b, unit cost for insert, delete, and substitute.
func Distance(a, b string) int {
	return runeDistance([]rune(Normalize(a)), []rune(Normalize(b)))
}

// Similarity maps edit distance into [0,1]:
// 1 - distance/max(len). Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	ra, rb := []rune(Normalize(a)), []rune(Normalize(b))
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	d := runeDistance(ra, rb)
	return 1 - float64(d)/math.Max(float64(len(ra)), float64(len(rb)))
}

// Score rates a candidate against a query. A candidate containing the
// query as a normalized substring scores 100 and short-circuits
// everything else; otherwise the score blends word coverage (how many
// query words appear inside candidate words) with whole-string
// similarity, weighted 0.7 / 0.3.
func Score(query, candidate string) float64 {
	qs := Normalize(query)
	cs := Normalize(candidate)
	if qs == "" {
		return 0
	}
	if strings.Contains(cs, qs) {
		return 100
	}

	qWords := strings.Fields(qs)
	cWords := strings.Fields(cs)

	matching := 0
	for _, qw := range qWords {
		for _, cw := range cWords {
			if strings.Contains(cw, qw) {
				matching++
				break
			}
		}
	}
	coverage := float64(matching) / math.Max(1, float64(len(qWords)))

	return coverage*0.7 + Similarity(qs, cs)*0.3
}

// IsFuzzyMatch reports whether label plausibly names what the query
// asks for: substring containment, whole-string similarity at or above
// the threshold, or any sufficiently long query word close enough to
// any label word. The per-word branch is what lets a 5-character typo
// of a 6-character word still match.
func (c Config) IsFuzzyMatch(query, label string) bool {
	q := Normalize(query)
	l := Normalize(label)
	if q == "" || l == "" {
		return false
	}

	if strings.Contains(l, q) {
		return true
	}

	if Similarity(q, l) >= c.WholeSimilarity {
		return true
	}

	for _, qw := range strings.Fields(q) {
		if len(qw) < c.MinWordLen {
			continue
		}
		for _, lw := range strings.Fields(l) {
			if len(lw) < c.MinWordLen {
				continue
			}
			if Similarity(qw, lw) >= c.WordSimilarity {
				return true
			}
		}
	}
	return false
}

// Two-row Levenshtein; quadratic time, linear space.
func runeDistance(a, b []rune) int {
	if string(a) == string(b) {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = minInt(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(vals ...int) int {
	best := vals[0]
	for _, v := range vals[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
