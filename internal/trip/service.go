package trip

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/ldecaneva/NomadDay/internal/ai"
	"github.com/ldecaneva/NomadDay/internal/itinerary"
	"github.com/ldecaneva/NomadDay/internal/places"
)

// recommendationLimit caps the place cards appended to a conversational
// reply.
const recommendationLimit = 3

// structuralTagRe detects an embedded schedule in a chat reply.
var structuralTagRe = regexp.MustCompile(`(?i)<h[1-6]|<ul>|<li>`)

// Planner orchestrates the LLM collaborator and the itinerary pipeline.
type Planner struct {
	llm      ai.Provider
	enhancer *itinerary.Enhancer
	search   places.Searcher
}

// NewPlanner creates a Planner. search may be nil when no places API is
// configured; enhancement and recommendations are then skipped.
func NewPlanner(llm ai.Provider, enhancer *itinerary.Enhancer, search places.Searcher) *Planner {
	return &Planner{llm: llm, enhancer: enhancer, search: search}
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	Reply string
	// UpdatedDocument is the new itinerary document when the reply embedded
	// one, or empty when the turn was purely conversational.
	UpdatedDocument string
}

// Generate produces a new itinerary document from the trip form. The form
// is validated before the LLM is invoked; an LLM failure aborts the
// operation (wrapped in ErrUpstream) since no itinerary can exist without
// it. A successful document with few hyperlinks is run through place
// enhancement.
func (p *Planner) Generate(ctx context.Context, form Form) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	raw, err := p.llm.Generate(ctx, itinerarySystemPrompt, buildItineraryPrompt(form))
	if err != nil {
		log.Printf("itinerary generation failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	doc := itinerary.StripCodeFences(raw)
	if p.enhancer != nil && itinerary.ShouldEnhance(doc) {
		doc = p.enhancer.Enhance(ctx, doc, form.Destination)
	}
	return doc, nil
}

// ChatTurn processes a free-form user instruction against the current
// itinerary document. When the LLM reply contains structural HTML it is
// split into an explanation prefix and a revised document that replaces
// the old one outright; otherwise the reply is conversational and the
// document is unchanged. Recommendation-seeking questions get formatted
// place suggestions appended when the lookup collaborator is available.
func (p *Planner) ChatTurn(ctx context.Context, form Form, doc, message string) (ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, ErrMissingMessage
	}
	if strings.TrimSpace(doc) == "" {
		return ChatResult{}, ErrMissingSchedule
	}
	if err := form.Validate(); err != nil {
		return ChatResult{}, err
	}

	raw, err := p.llm.Generate(ctx, chatContext(doc, form), augmentChatMessage(message))
	if err != nil {
		log.Printf("chat turn failed: %v", err)
		return ChatResult{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if loc := structuralTagRe.FindStringIndex(raw); loc != nil {
		return p.mergeScheduleUpdate(ctx, form, raw, loc[0]), nil
	}

	reply := raw
	if p.search != nil && seeksRecommendations(message) {
		reply = p.appendRecommendations(ctx, form, reply, message)
	}
	return ChatResult{Reply: reply}, nil
}

// mergeScheduleUpdate splits a structural reply into its explanation
// prefix and the embedded revised document, re-enhancing the document
// when it lacks hyperlinks.
func (p *Planner) mergeScheduleUpdate(ctx context.Context, form Form, raw string, tagStart int) ChatResult {
	explanation := strings.TrimSpace(raw[:tagStart])
	if explanation == "" {
		explanation = "Here's your updated schedule:"
	}
	updated := strings.TrimSpace(raw[tagStart:])

	if p.enhancer != nil && itinerary.ShouldEnhance(updated) {
		updated = p.enhancer.Enhance(ctx, updated, form.Destination)
	}

	return ChatResult{
		Reply:           explanation + " <p><em>Schedule has been updated!</em></p>",
		UpdatedDocument: updated,
	}
}

// appendRecommendations looks up places matching the question's category
// and appends them as formatted cards. Lookup failure leaves the reply
// as-is; recommendations are best-effort.
func (p *Planner) appendRecommendations(ctx context.Context, form Form, reply, message string) string {
	queryType := classifyRecommendationQuery(message)
	results, err := p.search.Search(ctx, fmt.Sprintf("%s in %s", queryType, form.Destination), recommendationLimit)
	if err != nil {
		log.Printf("recommendation lookup failed for %q: %v", queryType, err)
		return reply
	}
	if len(results) == 0 {
		return reply
	}
	return reply + "\n<p>Here are some specific recommendations for you:</p>\n" + formatRecommendations(results)
}
