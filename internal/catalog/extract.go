package catalog

import (
	"regexp"
	"strings"
)

var (
	trailingParen = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	variantParen  = regexp.MustCompile(`\(([^)]+)\)\s*$`)
	wordToken     = regexp.MustCompile(`\w+`)
)

// brandCasing maps lowercased brand tokens to their canonical casing.
// Applied to whole words only, so "yes" inside another word is untouched.
var brandCasing = map[string]string{
	"makemytrip": "MakeMyTrip",
	"icici":      "ICICI",
	"hdfc":       "HDFC",
	"sbi":        "SBI",
	"idfc":       "IDFC",
	"pnb":        "PNB",
	"rbl":        "RBL",
	"yes":        "YES",
}

// BaseName strips a single trailing parenthesized group:
// "HDFC Regalia (Visa Signature)" -> "HDFC Regalia". Parentheticals
// embedded mid-string stay part of the base.
func BaseName(raw string) string {
	return strings.TrimSpace(trailingParen.ReplaceAllString(raw, ""))
}

// Variant returns the inner text of a trailing parenthetical, or "" when
// the name carries none.
func Variant(raw string) string {
	m := variantParen.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// CanonicalBrand rewrites known casing variants of brand tokens
// ("Hdfc" -> "HDFC") wherever they appear as whole words.
func CanonicalBrand(text string) string {
	return wordToken.ReplaceAllStringFunc(text, func(tok string) string {
		if canon, ok := brandCasing[strings.ToLower(tok)]; ok {
			return canon
		}
		return tok
	})
}

// DisplayName is the canonical form of a raw mention used for entity
// identity and display: trailing variant stripped, brand casing fixed.
func DisplayName(raw string) string {
	return CanonicalBrand(BaseName(raw))
}

// SplitList splits a comma-separated list field into trimmed segments,
// dropping empties. Newlines are treated as spaces first.
func SplitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(strings.ReplaceAll(val, "\n", " "), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
