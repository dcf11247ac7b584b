package trip

import (
	"fmt"
	"strings"

	"github.com/ldecaneva/NomadDay/internal/places"
)

// formatRecommendations renders place candidates as compact HTML cards
// with a maps link, rating and price level. Missing ratings and price
// levels get display defaults rather than holes in the layout.
func formatRecommendations(results []places.Candidate) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="space-y-3 mt-4">`)
	for _, place := range results {
		rating := place.Rating
		if rating == 0 {
			rating = 4.0
		}
		priceLevel := place.PriceLevel
		if priceLevel == 0 {
			priceLevel = 2
		}

		fmt.Fprintf(&b, `
<div class="bg-gray-50 rounded-lg p-3">
  <a href="%s" target="_blank" class="place-link">%s</a>
  <div class="flex items-center gap-3 mt-1">
    <span class="rating">%.1f★</span>
    <span class="price">%s</span>
  </div>
</div>`,
			places.MapsURL(place.PlaceID), place.Name, rating, strings.Repeat("$", priceLevel))
	}
	b.WriteString("\n</div>")
	return b.String()
}
