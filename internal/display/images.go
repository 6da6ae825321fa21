package display

import (
	"regexp"
	"strings"

	"github.com/mehulsinha/offerscout/internal/catalog"
)

// Per-site logos used when a row carries no usable image URL.
var fallbackImageBySite = map[string]string{
	"bookmyshow":       "https://upload.wikimedia.org/wikipedia/commons/f/f2/Bookmyshow-logo.svg",
	"blinkit":          "https://yt3.googleusercontent.com/oe7za_pjcm3tYZKtTAs6aWuZCOzB6aHWnZOGYwrYjuZe72SMkVs3qoCElDQl-ob8CaKNimXI=s900-c-k-c0x00ffffff-no-rj",
	"swiggy instamart": "https://static.businessworld.in/Swiggy%20Instamart%20Orange-20%20(1)_20240913021826_original_image_44.webp",
	"zepto":            "https://static.toiimg.com/thumb/msid-111158305,imgsize-14390,width-400,resizemode-4/111158305.jpg",
	"bigbasket":        "https://tse4.mm.bing.net/th/id/OIP.8ti6MSe9X039YNinnER4fwAAAA?pid=Api&P=0&h=180",
}

var unusableImage = regexp.MustCompile(`(?i)^(na|n/a|null|undefined|-|image unavailable)$`)

// IsUsableImage reports whether a CSV image value is worth showing.
// Blank cells and the usual "no image" placeholders are not.
func IsUsableImage(val string) bool {
	s := strings.TrimSpace(val)
	if s == "" {
		return false
	}
	return !unusableImage.MatchString(s)
}

// FallbackImage returns the per-site logo for a source, matching on
// normalized substrings in either direction so "Blinkit Offers" still
// finds the Blinkit logo.
func FallbackImage(site string) string {
	key := catalog.Normalize(site)
	if key == "" {
		return ""
	}
	for siteKey, url := range fallbackImageBySite {
		norm := catalog.Normalize(siteKey)
		if key == norm || strings.Contains(key, norm) || strings.Contains(norm, key) {
			return url
		}
	}
	return ""
}

// ResolveImage picks the final image for an offer card and reports
// whether the fallback logo was substituted. An unusable candidate
// with no logo for the site passes through unchanged.
func ResolveImage(site, candidate string) (string, bool) {
	if IsUsableImage(candidate) {
		return strings.TrimSpace(candidate), false
	}
	if fb := FallbackImage(site); fb != "" {
		return fb, true
	}
	return strings.TrimSpace(candidate), false
}
