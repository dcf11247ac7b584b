package itinerary

import (
	"log"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// itemsPerFallbackDay is how many timed list items are assigned to each
// consecutive day when a document carries no day headings at all.
const itemsPerFallbackDay = 5

var (
	codeFenceRe = regexp.MustCompile("```html|```")
	timeTokenRe = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)`)
	leadTrimRe  = regexp.MustCompile(`^[:\s-]+`)

	workKeywordsRe    = regexp.MustCompile(`(?i)work|meeting|call|conference|coworking`)
	leisureKeywordsRe = regexp.MustCompile(`(?i)tour|visit|explore|museum|park|restaurant|cafe|shopping`)
)

// ParseOptions parameterize a parse run.
type ParseOptions struct {
	// Start is the calendar date mapped to the first day heading.
	// The trip's real start date is deliberately not consulted; callers
	// pass today to match the calendar view.
	Start time.Time
	// TripType shapes the placeholder schedule when nothing parses.
	TripType string
	// Destination is only used in placeholder event titles.
	Destination string
}

// StripCodeFences removes markdown code-block markers an LLM may wrap
// around HTML output.
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(s, ""))
}

// Parse extracts an ordered list of calendar events from itinerary HTML.
// Headings whose text contains "day" delimit day sections; the Nth such
// heading maps to Start + N-1 days. List items without a recognizable
// time token are skipped. Parsing never fails: documents with no day
// structure fall back to round-robin day assignment, and anything that
// yields zero events produces the fixed placeholder schedule.
func Parse(doc string, opts ParseOptions) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("itinerary parse panic recovered: %v", r)
			res = Result{
				Events:   PlaceholderSchedule(opts.Start, opts.Destination, opts.TripType),
				Fallback: FallbackParseError,
			}
		}
	}()

	headings, items := scanDocument(StripCodeFences(doc))

	if len(headings) == 0 {
		events := roundRobinEvents(items, opts.Start)
		if len(events) == 0 {
			return Result{
				Events:   PlaceholderSchedule(opts.Start, opts.Destination, opts.TripType),
				Fallback: FallbackPlaceholder,
			}
		}
		return Result{Events: events, Fallback: FallbackNoDayHeadings}
	}

	var events []Event
	for dayIndex := range headings {
		date := opts.Start.AddDate(0, 0, dayIndex).Format("2006-01-02")
		for _, item := range sectionItems(headings, items, dayIndex) {
			if ev, ok := eventFromItem(item, date); ok {
				events = append(events, ev)
			}
		}
	}

	if len(events) == 0 {
		return Result{
			Events:   PlaceholderSchedule(opts.Start, opts.Destination, opts.TripType),
			Fallback: FallbackPlaceholder,
		}
	}
	return Result{Events: events}
}

// listItem is a list item's text plus its position relative to the day
// headings (the number of day headings seen before it).
type listItem struct {
	text    string
	section int
}

// scanDocument tokenizes the HTML and returns the day headings (text of
// h1-h6 elements containing "day") and all list items with the section
// they belong to. The tokenizer is tolerant of the malformed markup LLMs
// produce; tag soup degrades to fewer recognized items, not an error.
func scanDocument(doc string) (headings []string, items []listItem) {
	z := html.NewTokenizer(strings.NewReader(doc))

	var (
		inHeading bool
		inItem    bool
		buf       strings.Builder
	)

	flushHeading := func() {
		text := strings.TrimSpace(buf.String())
		if strings.Contains(strings.ToLower(text), "day") {
			headings = append(headings, text)
		}
		buf.Reset()
		inHeading = false
	}
	flushItem := func() {
		if text := strings.TrimSpace(buf.String()); text != "" {
			items = append(items, listItem{text: text, section: len(headings)})
		}
		buf.Reset()
		inItem = false
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF (or unreadable input): emit whatever is still open.
			if inHeading {
				flushHeading()
			}
			if inItem {
				flushItem()
			}
			return headings, items
		case html.StartTagToken:
			name, _ := z.TagName()
			switch tag := string(name); {
			case isHeadingTag(tag):
				if inItem {
					flushItem()
				}
				inHeading = true
				buf.Reset()
			case tag == "li":
				if inItem {
					flushItem()
				}
				inItem = true
				buf.Reset()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch tag := string(name); {
			case isHeadingTag(tag) && inHeading:
				flushHeading()
			case tag == "li" && inItem:
				flushItem()
			}
		case html.TextToken:
			if inHeading || inItem {
				buf.Write(z.Text())
			}
		}
	}
}

func isHeadingTag(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}

// sectionItems returns the list items between day heading dayIndex and the
// next day heading (or end of document). Heading slots are 1-based in
// listItem.section because section 0 is the preamble before any heading.
func sectionItems(headings []string, items []listItem, dayIndex int) []string {
	var out []string
	for _, item := range items {
		if item.section == dayIndex+1 {
			out = append(out, item.text)
		}
	}
	return out
}

// eventFromItem extracts the time token and title from a list item's text.
func eventFromItem(text, date string) (Event, bool) {
	token := timeTokenRe.FindString(text)
	if token == "" {
		return Event{}, false
	}
	title := strings.Replace(text, token, "", 1)
	title = strings.TrimSpace(leadTrimRe.ReplaceAllString(title, ""))
	return Event{
		Date:     date,
		Time:     token,
		Title:    title,
		Category: classify(title),
	}, true
}

// roundRobinEvents distributes timed list items across consecutive days,
// five items per day, when no day headings exist to anchor them.
func roundRobinEvents(items []listItem, start time.Time) []Event {
	var events []Event
	for _, item := range items {
		date := start.AddDate(0, 0, len(events)/itemsPerFallbackDay).Format("2006-01-02")
		if ev, ok := eventFromItem(item.text, date); ok {
			events = append(events, ev)
		}
	}
	return events
}

// classify buckets a title by keyword; work keywords are checked before
// leisure keywords, first match wins.
func classify(title string) Category {
	switch {
	case workKeywordsRe.MatchString(title):
		return CategoryWork
	case leisureKeywordsRe.MatchString(title):
		return CategoryLeisure
	default:
		return CategoryOther
	}
}
