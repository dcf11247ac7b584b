// README: Flight search, mock options until a real fare provider is wired in.
package booking

import (
	"errors"
	"strings"
)

var ErrMissingAirports = errors.New("both departure and arrival airport codes are required")

type SearchParams struct {
	Destination       string `json:"destination"`
	DepartureLocation string `json:"departureLocation,omitempty"`
	ArrivalLocation   string `json:"arrivalLocation,omitempty"`
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
	Adults            int    `json:"adults,omitempty"`
	Budget            string `json:"budget,omitempty"`
}

type FlightOption struct {
	ID               string  `json:"id"`
	Airline          string  `json:"airline"`
	DepartureAirport string  `json:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime"`
	Duration         string  `json:"duration"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	BookingURL       string  `json:"bookingUrl"`
	Stops            int     `json:"stops"`
}

// SearchFlights returns a fixed set of options with the requested route
// substituted in. Departure defaults to SFO, arrival to the first three
// letters of the destination.
func SearchFlights(params SearchParams) []FlightOption {
	departure := params.DepartureLocation
	if departure == "" {
		departure = "SFO"
	}
	arrival := params.ArrivalLocation
	if arrival == "" {
		dest := params.Destination
		if len(dest) > 3 {
			dest = dest[:3]
		}
		arrival = strings.ToUpper(dest)
	}

	options := []FlightOption{
		{ID: "f1", Airline: "Delta Airlines", DepartureTime: "08:30 AM", ArrivalTime: "12:45 PM", Duration: "11h 15m", Price: 850, BookingURL: "https://www.delta.com", Stops: 0},
		{ID: "f2", Airline: "United Airlines", DepartureTime: "11:20 AM", ArrivalTime: "4:35 PM", Duration: "12h 15m", Price: 780, BookingURL: "https://www.united.com", Stops: 1},
		{ID: "f3", Airline: "Japan Airlines", DepartureTime: "1:15 PM", ArrivalTime: "6:30 PM", Duration: "10h 15m", Price: 920, BookingURL: "https://www.jal.com", Stops: 0},
		{ID: "f4", Airline: "Air France", DepartureTime: "7:45 PM", ArrivalTime: "10:15 AM", Duration: "13h 30m", Price: 710, BookingURL: "https://www.airfrance.com", Stops: 1},
	}
	for i := range options {
		options[i].DepartureAirport = departure
		options[i].ArrivalAirport = arrival
		options[i].Currency = "USD"
	}
	return options
}
