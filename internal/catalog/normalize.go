package catalog

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize produces the canonical comparison key for a piece of text:
// lowercased, Unicode compatibility-decomposed, everything that is not a
// word character or whitespace dropped, whitespace collapsed to single
// spaces, trimmed. Idempotent; every comparison in the matching engine
// goes through it, raw strings are never compared.
func Normalize(text string) string {
	s := norm.NFKD.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var urlScheme = regexp.MustCompile(`^https?:///?`)

// NormalizeURL canonicalizes a URL for duplicate detection: lowercased,
// scheme and leading www. removed, trailing slash removed.
func NormalizeURL(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = urlScheme.ReplaceAllString(s, "")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}
