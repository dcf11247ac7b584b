// Package places wraps the Google Places API behind the small lookup
// surface the itinerary pipeline and booking search consume.
package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Candidate is the subset of a Places result used to build place links.
type Candidate struct {
	PlaceID    string  `json:"place_id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating,omitempty"`
	PriceLevel int     `json:"price_level,omitempty"`
}

// Lodging is a hotel search result with the detail fields the booking
// view needs.
type Lodging struct {
	PlaceID          string
	Name             string
	Address          string
	Rating           float64
	UserRatingsTotal int
	PriceLevel       int
	Types            []string
}

// Resolver resolves a free-text query to at most one place.
// A nil candidate with a nil error means no match, which callers must
// treat as a silent skip rather than a failure.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*Candidate, error)
}

// Searcher returns up to limit places matching a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// Service handles interactions with the Google Places API.
type Service struct {
	client *maps.Client
}

// NewService creates a Service with the given API key.
func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// Resolve runs a text search and returns the first result, which is the
// most likely match for an exact place name. Returns nil on no match.
func (s *Service) Resolve(ctx context.Context, query string) (*Candidate, error) {
	results, err := s.Search(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// Search runs a text search and returns up to limit candidates.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Candidate
	for _, r := range resp.Results {
		results = append(results, Candidate{
			PlaceID:    r.PlaceID,
			Name:       r.Name,
			Rating:     float64(r.Rating),
			PriceLevel: r.PriceLevel,
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

// SearchLodging searches for hotels in the destination, limited to places
// tagged with the lodging type.
func (s *Service) SearchLodging(ctx context.Context, destination string, limit int) ([]Lodging, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query: fmt.Sprintf("hotels in %s", destination),
		Type:  maps.PlaceTypeLodging,
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Lodging
	for _, r := range resp.Results {
		results = append(results, Lodging{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Address:          r.FormattedAddress,
			Rating:           float64(r.Rating),
			UserRatingsTotal: r.UserRatingsTotal,
			PriceLevel:       r.PriceLevel,
			Types:            r.Types,
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

// MapsURL returns the maps deep link for a place id.
func MapsURL(placeID string) string {
	return "https://www.google.com/maps/place/?q=place_id:" + placeID
}
