// Package itinerary implements the text-processing pipeline that turns
// LLM-generated schedule HTML into enhanced display markup and structured
// calendar events.
package itinerary

// Category classifies an event for the calendar view.
type Category string

const (
	CategoryWork    Category = "work"
	CategoryLeisure Category = "leisure"
	CategoryOther   Category = "other"
)

// Event is one calendar entry derived from the itinerary document.
// Events are recomputed from the document on every parse, never mutated.
type Event struct {
	Date        string   `json:"date"` // ISO calendar date, YYYY-MM-DD
	Time        string   `json:"time"` // display time, e.g. "9:00 AM"
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
}

// FallbackReason names the deliberate degraded outcomes of parsing.
// The parser never fails; it reports how it arrived at its events instead.
type FallbackReason string

const (
	// FallbackNone means day headings were found and parsed normally.
	FallbackNone FallbackReason = ""
	// FallbackNoDayHeadings means no "Day N" headings were present and timed
	// list items were distributed round-robin across consecutive days.
	FallbackNoDayHeadings FallbackReason = "no_day_headings"
	// FallbackPlaceholder means nothing parseable was found and the fixed
	// placeholder schedule was emitted.
	FallbackPlaceholder FallbackReason = "placeholder"
	// FallbackParseError means the document broke the parser internally and
	// the placeholder schedule was emitted.
	FallbackParseError FallbackReason = "parse_error"
)

// Result is the outcome of parsing an itinerary document.
type Result struct {
	Events   []Event        `json:"events"`
	Fallback FallbackReason `json:"fallback,omitempty"`
}
