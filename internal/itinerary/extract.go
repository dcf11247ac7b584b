package itinerary

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// placePatterns recognize action-verb phrases that introduce a place name.
// A name must start with an uppercase letter and runs until a delimiter:
// an opening parenthesis, a hyphen, a tag boundary, or end of line.
var placePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)(?:Visit|Explore|Tour|See|Check out)\s+([A-Z][A-Za-z'\s]+?)(?:\s+\(|\s*-|\s*<|\s*$)`),
	regexp.MustCompile(`(?m)(?:Lunch|Dinner|Breakfast|Coffee|Drinks|Eat)\s+at\s+([A-Z][A-Za-z'\s]+?)(?:\s+\(|\s*-|\s*<|\s*$)`),
	regexp.MustCompile(`(?m)(?:Stay|Check-in|Accommodation)\s+at\s+([A-Z][A-Za-z'\s]+?)(?:\s+\(|\s*-|\s*<|\s*$)`),
	regexp.MustCompile(`(?m)(?:Work|Meeting)\s+at\s+([A-Z][A-Za-z'\s]+?)(?:\s+\(|\s*-|\s*<|\s*$)`),
}

// ExtractPlaceNames scans itinerary HTML for candidate place names. The
// result is deterministic, grouped by verb pattern, with exact-string
// duplicates removed. Overlapping verb phrases referencing the same
// literal name yield one candidate.
func ExtractPlaceNames(doc string) []string {
	var names []string
	for _, pattern := range placePatterns {
		for _, match := range pattern.FindAllStringSubmatch(doc, -1) {
			name := strings.TrimSpace(match[1])
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return lo.Uniq(names)
}
