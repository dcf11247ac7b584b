package itinerary

import (
	"regexp"
	"strings"
)

// Price and rating patterns. Each alternation lists the already-wrapped
// span form first so a second pass matches the wrapped value whole and
// leaves it untouched, making the formatter idempotent. Range and
// per-unit forms come before the bare amount so "$30-$50" is not split
// into two matches.
var (
	priceRe  = regexp.MustCompile(`<span class="price">[^<]*</span>|\$\d+-\$\d+|\$\d+/[A-Za-z]+|\$\d+`)
	ratingRe = regexp.MustCompile(`<span class="rating">[^<]*</span>|\d\.\d★`)
)

// FormatPricesAndRatings wraps every currency amount ($NN, $NN-$NN,
// $NN/unit) in a price span and every N.N★ rating in a rating span.
// Already-wrapped values are left alone; re-running never nests markup.
func FormatPricesAndRatings(doc string) string {
	doc = priceRe.ReplaceAllStringFunc(doc, func(m string) string {
		if strings.HasPrefix(m, "<span") {
			return m
		}
		return `<span class="price">` + m + `</span>`
	})
	doc = ratingRe.ReplaceAllStringFunc(doc, func(m string) string {
		if strings.HasPrefix(m, "<span") {
			return m
		}
		return `<span class="rating">` + m + `</span>`
	})
	return doc
}
