package itinerary

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/ldecaneva/NomadDay/internal/places"
)

// styleBlock carries the inline classes the enhancement and formatting
// passes attach to links, prices and ratings.
const styleBlock = `<style>
  .place-link { color: #10B981; font-weight: 500; text-decoration: none; }
  .place-link:hover { text-decoration: underline; }
  .price { color: #3B82F6; font-weight: 600; }
  .rating { color: #8B5CF6; font-weight: 600; }
</style>
`

// enhanceLinkThreshold: documents that already carry at least this many
// hyperlinks are considered enhanced and are left alone.
const enhanceLinkThreshold = 5

var (
	anchorRe   = regexp.MustCompile(`(?s)<a\b[^>]*>.*?</a>`)
	hrefRe     = regexp.MustCompile(`<a href`)
	styleTagRe = regexp.MustCompile(`<style\b`)
)

// Enhancer rewrites plain place names in an itinerary document into
// hyperlinks backed by the places-lookup collaborator.
type Enhancer struct {
	resolver places.Resolver
}

// NewEnhancer creates an Enhancer. resolver may be nil, in which case
// Enhance still injects styles and formats prices but adds no links.
func NewEnhancer(resolver places.Resolver) *Enhancer {
	return &Enhancer{resolver: resolver}
}

// ShouldEnhance reports whether the document has too few hyperlinks to be
// considered enhanced already.
func ShouldEnhance(doc string) bool {
	return len(hrefRe.FindAllStringIndex(doc, -1)) < enhanceLinkThreshold
}

// Enhance injects the style block, then for each extracted place name
// queries the lookup collaborator with "<name> in <destination>" and, on a
// match, rewrites every occurrence of the name that is not already inside
// an anchor into a maps hyperlink. Candidates are processed strictly in
// extraction order so each rewrite sees the anchors added by the previous
// ones. A failed lookup is treated as a no-match for that candidate only.
// Afterwards prices and ratings are wrapped and adjacent duplicates
// collapsed.
func (e *Enhancer) Enhance(ctx context.Context, doc, destination string) string {
	doc = InjectStyles(doc)

	if e.resolver != nil {
		for _, name := range ExtractPlaceNames(doc) {
			query := fmt.Sprintf("%s in %s", name, destination)
			candidate, err := e.resolver.Resolve(ctx, query)
			if err != nil {
				log.Printf("place lookup failed for %q: %v", name, err)
				continue
			}
			if candidate == nil {
				continue
			}
			doc = linkPlace(doc, name, candidate.PlaceID)
		}
	}

	doc = FormatPricesAndRatings(doc)
	doc = CollapseDuplicates(doc)
	return doc
}

// InjectStyles prepends the style block unless the document already has a
// style tag.
func InjectStyles(doc string) string {
	if styleTagRe.MatchString(doc) {
		return doc
	}
	return styleBlock + doc
}

// linkPlace rewrites every occurrence of name that does not fall inside an
// existing anchor element into a place-link hyperlink, preserving the
// visible text.
func linkPlace(doc, name, placeID string) string {
	anchors := anchorRe.FindAllStringIndex(doc, -1)
	nameRe := regexp.MustCompile(regexp.QuoteMeta(name))

	var b strings.Builder
	last := 0
	for _, loc := range nameRe.FindAllStringIndex(doc, -1) {
		if insideAny(loc, anchors) {
			continue
		}
		b.WriteString(doc[last:loc[0]])
		b.WriteString(`<a href="`)
		b.WriteString(places.MapsURL(placeID))
		b.WriteString(`" target="_blank" class="place-link">`)
		b.WriteString(doc[loc[0]:loc[1]])
		b.WriteString(`</a>`)
		last = loc[1]
	}
	b.WriteString(doc[last:])
	return b.String()
}

// insideAny reports whether the span loc overlaps any of the given spans.
func insideAny(loc []int, spans [][]int) bool {
	for _, s := range spans {
		if loc[0] >= s[0] && loc[1] <= s[1] {
			return true
		}
		if s[0] > loc[1] {
			break
		}
	}
	return false
}
