// Package trip holds the trip form model and the Planner that orchestrates
// itinerary generation and chat-driven updates.
package trip

import "errors"

// Trip types.
const (
	TypeWork    = "work"
	TypeLeisure = "leisure"
	TypeHybrid  = "hybrid"
)

// Validation failures, reported before any collaborator is invoked.
var (
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingDuration    = errors.New("duration is required")
	ErrMissingTripType    = errors.New("trip type is required")
	ErrMissingMessage     = errors.New("message is required")
	ErrMissingSchedule    = errors.New("schedule is required")
)

// ErrUpstream wraps LLM collaborator failures. No itinerary can be
// produced without the LLM, so these surface to the caller as a single
// user-visible error instead of being retried.
var ErrUpstream = errors.New("travel assistant is unavailable")

// Form is the user-entered trip preferences. It is an immutable input to
// generation; the pipeline never mutates it.
type Form struct {
	Destination           string   `json:"destination"`
	Budget                string   `json:"budget"`
	Duration              string   `json:"duration"`
	TripType              string   `json:"tripType"`
	ScheduleStyle         string   `json:"scheduleStyle"`
	Activities            []string `json:"activities"`
	ImportCalendar        bool     `json:"importCalendar"`
	BookMissingComponents bool     `json:"bookMissingComponents"`
	HotelReservation      bool     `json:"hotelReservation"`
	ColleagueTimezones    []string `json:"colleagueTimezones"`
	FreeTextPrompt        string   `json:"freeTextPrompt"`
}

// Validate reports the first missing required field.
func (f Form) Validate() error {
	switch {
	case f.Destination == "":
		return ErrMissingDestination
	case f.Duration == "":
		return ErrMissingDuration
	case f.TripType == "":
		return ErrMissingTripType
	}
	return nil
}
