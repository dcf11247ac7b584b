package calendar

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/ldecaneva/NomadDay/internal/itinerary"
)

const (
	googleCalendarBase = "https://calendar.google.com/calendar/render"
	eventDuration      = time.Hour
)

// Accepts the same clock tokens the schedule parser emits, so case and
// spacing around the meridiem never matter here.
var clockRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// EventURL builds a Google Calendar template URL for a single event. The
// event gets a one hour slot starting at its scheduled time.
func EventURL(ev itinerary.Event) (string, error) {
	start, err := eventStart(ev)
	if err != nil {
		return "", err
	}
	end := start.Add(eventDuration)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ev.Title)
	q.Set("dates", fmt.Sprintf("%s/%s", start.UTC().Format("20060102T150405Z"), end.UTC().Format("20060102T150405Z")))
	if ev.Description != "" {
		q.Set("details", ev.Description)
	}
	return googleCalendarBase + "?" + q.Encode(), nil
}

// ExportURL returns the add-to-calendar URL for the first event of the
// schedule. Clients that want every event use ICS instead.
func ExportURL(events []itinerary.Event) (string, error) {
	if len(events) == 0 {
		return "", fmt.Errorf("no events to export")
	}
	return EventURL(events[0])
}

// ICS renders the full schedule as an iCalendar document, one VEVENT per
// itinerary event. name becomes the calendar's display name.
func ICS(name string, events []itinerary.Event) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//NomadDay//Schedule//EN")
	if name != "" {
		cal.SetXWRCalName(name)
	}

	now := time.Now().UTC()
	for _, ev := range events {
		start, err := eventStart(ev)
		if err != nil {
			return "", err
		}
		vevent := cal.AddEvent(uuid.NewString())
		vevent.SetCreatedTime(now)
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(eventDuration))
		vevent.SetSummary(ev.Title)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
	}
	return cal.Serialize(), nil
}

func eventStart(ev itinerary.Event) (time.Time, error) {
	day, err := time.Parse("2006-01-02", ev.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event date %q: %w", ev.Date, err)
	}
	m := clockRe.FindStringSubmatch(strings.TrimSpace(ev.Time))
	if m == nil {
		return time.Time{}, fmt.Errorf("parse event time %q", ev.Time)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 12 || minute > 59 {
		return time.Time{}, fmt.Errorf("parse event time %q", ev.Time)
	}
	if strings.EqualFold(m[3], "PM") && hour != 12 {
		hour += 12
	} else if strings.EqualFold(m[3], "AM") && hour == 12 {
		hour = 0
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}
