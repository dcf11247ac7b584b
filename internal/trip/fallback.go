package trip

import (
	"fmt"
	"strings"
)

// FallbackItinerary builds a sample schedule document from the form alone,
// served when the LLM collaborator is unavailable so the client still has
// something to render and edit.
func FallbackItinerary(f Form) string {
	var b strings.Builder

	style := f.ScheduleStyle
	if style == "" {
		style = "balanced"
	}
	title := strings.ToUpper(style[:1]) + style[1:]

	fmt.Fprintf(&b, "<h2>Your %s Schedule for %s</h2>", title, f.Destination)
	fmt.Fprintf(&b, "<p>Here's your personalized %s itinerary for %s in %s:</p>", f.TripType, f.Duration, f.Destination)

	b.WriteString("<h3>Daily Overview</h3><ul>")
	if f.TripType == TypeWork || f.TripType == TypeHybrid {
		b.WriteString("<li><strong>Morning:</strong> Productive work sessions at recommended coworking spaces</li>")
	}
	if f.TripType == TypeLeisure || f.TripType == TypeHybrid {
		sample := "local attractions"
		if len(f.Activities) > 0 {
			n := len(f.Activities)
			if n > 3 {
				n = 3
			}
			sample = strings.Join(f.Activities[:n], ", ")
		}
		fmt.Fprintf(&b, "<li><strong>Afternoon:</strong> Explore %s</li>", sample)
	}
	b.WriteString("<li><strong>Evening:</strong> Dinner at local restaurants with cultural experiences</li></ul>")

	b.WriteString("<h3>Day 1 - Getting Oriented</h3><ul>")
	b.WriteString("<li><strong>8:00 AM:</strong> Breakfast at hotel</li>")
	if f.TripType == TypeWork || f.TripType == TypeHybrid {
		b.WriteString("<li><strong>9:00 AM - 12:00 PM:</strong> Work session at recommended coworking space</li>")
		b.WriteString("<li><strong>12:00 PM:</strong> Lunch break at nearby cafe</li>")
		b.WriteString("<li><strong>1:00 PM - 3:00 PM:</strong> Team call or focused work time</li>")
	}
	if f.TripType == TypeLeisure || f.TripType == TypeHybrid {
		start := "9:30 AM"
		if f.TripType == TypeHybrid {
			start = "3:30 PM"
		}
		activity := "local attractions"
		if len(f.Activities) > 0 {
			activity = f.Activities[0]
		}
		fmt.Fprintf(&b, "<li><strong>%s - 6:00 PM:</strong> Explore %s</li>", start, activity)
	}
	b.WriteString("<li><strong>7:00 PM:</strong> Dinner at recommended local restaurant</li>")
	b.WriteString("<li><strong>9:00 PM:</strong> Evening stroll or relaxation time</li></ul>")

	b.WriteString(`<p><em>This schedule is fully customizable. You can adjust any activity or timing by typing specific instructions in the chat box.</em></p>`)

	return b.String()
}
