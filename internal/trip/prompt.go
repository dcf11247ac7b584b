package trip

import (
	"fmt"
	"regexp"
	"strings"
)

// itinerarySystemPrompt fixes the structure and formatting of generated
// schedules so the downstream text pipeline can rely on time tokens,
// simple place names and day headings.
const itinerarySystemPrompt = `You are NomadDay, an AI travel assistant specialized in creating detailed travel itineraries.
Follow these guidelines to ensure consistency:

1. FORMAT: Format your response in clean HTML with h2, h3, ul, li, and strong tags. DO NOT use markdown code blocks.
2. STRUCTURE: Always include these sections in this order:
   - Title (h2): "Your [Schedule Style] Schedule for [Destination]"
   - Introduction paragraph
   - Daily Overview (h3) with bullet points for morning, afternoon, and evening activities
   - Day-by-day breakdown (h3 for each day) with specific times, locations, and estimated costs
   - Additional Recommendations section with workspace, transportation, and accommodation suggestions
3. SPECIFICITY: Always include specific:
   - Times in the format "9:00 AM" (not "morning" or "afternoon")
   - Location names (not "a local restaurant" but "Sakura Sushi Restaurant")
   - Cost estimates in the format "$XX"
4. PLACE NAMES: Use clear, simple place names:
   - Just use the main name (e.g., "Sisterfields" not "Kismet Sisterfields & Boutique")
   - Don't add location information after the name (e.g., "Louvre Museum" not "Louvre Museum, Paris")
   - Don't add descriptors unless they're part of the official name
5. CONSISTENCY: Maintain the same level of detail for each day
6. STYLE: Use a friendly, concise tone throughout
7. AVOID DUPLICATES: Never repeat place names or ratings in the same entry

The schedule should be practical, actionable, and tailored to the user's preferences.`

// chatSystemPrompt governs follow-up conversation turns; the current
// schedule and trip details are appended per request.
const chatSystemPrompt = `You are NomadDay, an AI travel assistant. You are helping a user with their trip.
Follow these guidelines to ensure consistency:

1. TONE: Be friendly, helpful, and concise. Use a consistent voice throughout.
2. FORMATTING: Use clean HTML for any structured content. Use <p>, <ul>, <li>, and <strong> tags appropriately.
3. PLACE NAMES: Use clear, simple place names without location suffixes or descriptors.
4. MODIFICATIONS: When modifying a schedule:
   - Always maintain the same structure and style as the original
   - Keep the same level of specificity for times, locations, and costs
   - Explain what changes you made clearly
   - Return the complete updated schedule, not just the changes
   - AVOID DUPLICATES: Never repeat place names or ratings
5. RECOMMENDATIONS: Be specific (name actual places, not generic "local restaurant"),
   keep it brief, mention price ranges using $ symbols, and recommend only ONE place per activity.
6. ANSWERS: Be direct, provide factual information, acknowledge when you don't know something.

Remember that your goal is to help the user have the best possible trip experience.`

var (
	modificationRe   = regexp.MustCompile(`(?i)change|modify|update|reschedule|move|add|remove`)
	recommendationRe = regexp.MustCompile(`(?i)recommend|suggestion|where|what|place|restaurant|hotel|activity|visit`)
)

// categoryRules map recommendation queries to a places search category.
// First matching rule wins.
var categoryRules = []struct {
	re        *regexp.Regexp
	queryType string
}{
	{regexp.MustCompile(`restaurant|food|eat|dining|dinner|lunch|breakfast`), "restaurants"},
	{regexp.MustCompile(`hotel|stay|accommodation|lodging`), "hotels"},
	{regexp.MustCompile(`museum|art|culture|history`), "museums"},
	{regexp.MustCompile(`park|nature|outdoor|garden`), "parks"},
	{regexp.MustCompile(`coffee|café|cafe`), "cafes"},
	{regexp.MustCompile(`work|coworking|office|workspace`), "coworking spaces"},
	{regexp.MustCompile(`shop|shopping|mall|store`), "shopping"},
}

// recommendationKeywords trigger the place-suggestion path for purely
// conversational replies.
var recommendationKeywords = []string{
	"recommend", "suggestion", "where should", "what should", "good place",
	"restaurant", "hotel", "activity", "visit", "things to do",
	"where to eat", "where to stay",
}

// scheduleStyleWording spells out what each schedule style means for the
// prompt.
func scheduleStyleWording(style string) string {
	switch style {
	case "full":
		return "packed with activities"
	case "medium":
		return "balanced with some free time"
	default:
		return "relaxed with plenty of free time"
	}
}

// buildItineraryPrompt turns the form into the structured generation
// request sent to the LLM.
func buildItineraryPrompt(f Form) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed travel itinerary for a %s trip to %s with a budget of %s for %s.",
		f.TripType, f.Destination, f.Budget, f.Duration)
	fmt.Fprintf(&b, " The schedule should be %s (%s).", f.ScheduleStyle, scheduleStyleWording(f.ScheduleStyle))

	if len(f.Activities) > 0 {
		fmt.Fprintf(&b, " Include the following activities: %s.", strings.Join(f.Activities, ", "))
	}
	if len(f.ColleagueTimezones) > 0 {
		fmt.Fprintf(&b, " Optimize the schedule for meetings with colleagues in these timezones: %s.",
			strings.Join(f.ColleagueTimezones, ", "))
	}
	if f.BookMissingComponents {
		b.WriteString(" Include recommendations for flights, trains, and other transportation options.")
	}
	if f.HotelReservation {
		b.WriteString(" Include hotel recommendations that fit within the budget.")
	}
	if f.FreeTextPrompt != "" {
		fmt.Fprintf(&b, " Additional preferences: %s", f.FreeTextPrompt)
	}

	b.WriteString(`

IMPORTANT: Your response MUST include:
1. Specific place names (not generic "local restaurant" or "museum")
2. Exact times for each activity (e.g., "9:00 AM", not just "morning")
3. Estimated costs for activities, meals, and transportation using $ symbols
4. If this is a work or hybrid trip, include specific coworking spaces or quiet cafes with good WiFi
5. Keep descriptions brief - focus on the name, price, and a very short comment

Format the response as a detailed day-by-day itinerary with specific times, locations, and estimated costs.

AVOID DUPLICATES: Never repeat place names or ratings in the same entry.`)

	return b.String()
}

// chatContext appends the working schedule and trip details to the chat
// system prompt for one turn.
func chatContext(doc string, f Form) string {
	return fmt.Sprintf(`%s

Current schedule:
%s

Trip details:
Destination: %s
Duration: %s
Trip Type: %s
Budget: %s`, chatSystemPrompt, doc, f.Destination, f.Duration, f.TripType, f.Budget)
}

// augmentChatMessage appends consistency instructions to the user's
// message when it looks like a schedule modification or a request for
// recommendations, so replies stay mergeable.
func augmentChatMessage(message string) string {
	if modificationRe.MatchString(message) {
		return message + `

IMPORTANT: If you're modifying the schedule, please:
1. Be specific with times, locations, and activities
2. Maintain the same format and structure as the original schedule
3. Return the complete updated schedule with all changes applied
4. For each activity, recommend only ONE place, not multiple
5. AVOID DUPLICATES: Never repeat place names or ratings
6. Keep place names simple (e.g., "Sisterfields" not "Kismet Sisterfields & Boutique, Ubud")`
	}
	if recommendationRe.MatchString(message) {
		return message + `

IMPORTANT: Please provide specific recommendations with:
1. Just the place name, no lengthy descriptions
2. Price range using $ symbols
3. Rating if available
4. For each activity, recommend only ONE place, not multiple
5. AVOID DUPLICATES: Never repeat place names or ratings`
	}
	return message
}

// seeksRecommendations reports whether the user's message is asking for
// place suggestions.
func seeksRecommendations(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range recommendationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// classifyRecommendationQuery maps the user's message to a places search
// category. The default is attractions.
func classifyRecommendationQuery(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range categoryRules {
		if rule.re.MatchString(lower) {
			return rule.queryType
		}
	}
	return "attractions"
}
