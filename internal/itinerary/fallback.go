package itinerary

import "time"

// PlaceholderSchedule builds the fixed 3-day schedule emitted when a
// document yields no parseable events. It is deterministic: shape depends
// only on the trip type (work and hybrid trips get a work session and
// lunch break, leisure and hybrid trips get an afternoon leisure block).
func PlaceholderSchedule(start time.Time, destination, tripType string) []Event {
	if destination == "" {
		destination = "your destination"
	}

	var events []Event
	for day := 0; day < 3; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")

		events = append(events, Event{
			Date: date, Time: "8:00 AM", Title: "Breakfast at hotel", Category: CategoryOther,
		})

		if tripType == "work" || tripType == "hybrid" {
			events = append(events,
				Event{Date: date, Time: "9:00 AM", Title: "Work session at coworking space", Category: CategoryWork},
				Event{Date: date, Time: "12:00 PM", Title: "Lunch break", Category: CategoryOther},
			)
		}

		if tripType == "leisure" || tripType == "hybrid" {
			leisureTime := "10:00 AM"
			if tripType == "hybrid" {
				leisureTime = "2:00 PM"
			}
			events = append(events, Event{
				Date: date, Time: leisureTime, Title: "Explore " + destination, Category: CategoryLeisure,
			})
		}

		events = append(events, Event{
			Date: date, Time: "7:00 PM", Title: "Dinner at local restaurant", Category: CategoryLeisure,
		})
	}
	return events
}
