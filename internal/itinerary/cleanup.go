package itinerary

import (
	"regexp"
	"strings"
)

// Duplicate units recognized by the cleaner. Overlapping extraction
// patterns and LLM repetition both produce immediately repeated links,
// rating badges and bare names; matching is purely lexical adjacency, so
// two mentions of the same place separated by other text are untouched.
var (
	placeLinkRe    = regexp.MustCompile(`<a href="[^"]*"[^>]*class="place-link"[^>]*>([^<]*)</a>`)
	ratingBadgeRe  = regexp.MustCompile(`\(\s*(?:<span class="rating">)?\d(?:\.\d)?★(?:</span>)?\s*\)`)
	properPhraseRe = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
)

// CollapseDuplicates removes sequences of immediately repeated identical
// hyperlinked place names, repeated rating badges, and repeated bare
// two-word proper-noun phrases, keeping a single occurrence. It must run
// after enhancement so duplicate links from overlapping patterns are
// caught. Idempotent.
func CollapseDuplicates(doc string) string {
	doc = collapseAdjacent(doc, placeLinkRe, func(m string) string {
		return placeLinkRe.FindStringSubmatch(m)[1]
	})
	// Adjacent rating badges collapse regardless of their value: a second
	// badge right after the first is always an artifact.
	doc = collapseAdjacent(doc, ratingBadgeRe, func(string) string { return "rating" })
	doc = collapseAdjacent(doc, properPhraseRe, func(m string) string { return m })
	return doc
}

// collapseAdjacent keeps the first of any run of matches of re that are
// separated by whitespace only and share the same key.
func collapseAdjacent(doc string, re *regexp.Regexp, keyOf func(string) string) string {
	locs := re.FindAllStringIndex(doc, -1)
	if len(locs) < 2 {
		return doc
	}

	var b strings.Builder
	last := 0
	prevEnd := -1
	prevKey := ""
	for _, loc := range locs {
		m := doc[loc[0]:loc[1]]
		key := keyOf(m)
		if prevEnd >= 0 && key == prevKey && isWhitespace(doc[prevEnd:loc[0]]) {
			// Repeat of the previous unit: drop it along with the separator.
			b.WriteString(doc[last:prevEnd])
			last = loc[1]
			prevEnd = loc[1]
			continue
		}
		prevEnd = loc[1]
		prevKey = key
	}
	b.WriteString(doc[last:])
	return b.String()
}

func isWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}
