// README: Booking handlers (flight and hotel search).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ldecaneva/NomadDay/internal/booking"
)

type BookingHandler struct {
	hotels *booking.HotelService
}

// NewBookingHandler creates the handler. hotels may be nil when no Places
// key is configured; hotel search then reports the missing dependency.
func NewBookingHandler(hotels *booking.HotelService) *BookingHandler {
	return &BookingHandler{hotels: hotels}
}

// Flights handles POST /api/flights.
func (h *BookingHandler) Flights(c *gin.Context) {
	var params booking.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if params.DepartureLocation == "" || params.ArrivalLocation == "" {
		writeError(c, http.StatusBadRequest, booking.ErrMissingAirports.Error())
		return
	}
	if !isAirportCode(params.DepartureLocation) || !isAirportCode(params.ArrivalLocation) {
		writeError(c, http.StatusBadRequest, "airport codes must be 3-letter IATA codes")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"flights": booking.SearchFlights(params)})
}

// Hotels handles POST /api/hotels.
func (h *BookingHandler) Hotels(c *gin.Context) {
	if h.hotels == nil {
		writeError(c, http.StatusInternalServerError, "places search not configured on server")
		return
	}
	var params booking.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	hotels, err := h.hotels.SearchHotels(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, booking.ErrMissingDestination) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "hotel search failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": hotels})
}

func isAirportCode(v string) bool {
	if len(v) != 3 {
		return false
	}
	for _, r := range v {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
