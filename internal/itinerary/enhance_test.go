package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ldecaneva/NomadDay/internal/places"
)

// stubResolver resolves known names to fixed place IDs.
type stubResolver struct {
	ids     map[string]string
	err     error
	queries []string
}

func (s *stubResolver) Resolve(_ context.Context, query string) (*places.Candidate, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	for name, id := range s.ids {
		if strings.HasPrefix(query, name) {
			return &places.Candidate{PlaceID: id, Name: name}, nil
		}
	}
	return nil, nil
}

func TestShouldEnhance_Threshold(t *testing.T) {
	link := `<a href="https://example.com">x</a> `
	if !ShouldEnhance(strings.Repeat(link, 4)) {
		t.Error("expected enhancement with 4 links")
	}
	if ShouldEnhance(strings.Repeat(link, 5)) {
		t.Error("expected no enhancement with 5 links")
	}
}

func TestEnhance_LinksResolvedPlaces(t *testing.T) {
	resolver := &stubResolver{ids: map[string]string{"Meiji Shrine": "pid123"}}
	e := NewEnhancer(resolver)

	doc := `<ul><li><strong>9:00 AM:</strong> Visit Meiji Shrine</li></ul>`
	got := e.Enhance(context.Background(), doc, "Tokyo")

	want := `<a href="https://www.google.com/maps/place/?q=place_id:pid123" target="_blank" class="place-link">Meiji Shrine</a>`
	if !strings.Contains(got, want) {
		t.Fatalf("expected link %s in output:\n%s", want, got)
	}
	if !strings.HasPrefix(got, "<style>") {
		t.Error("expected style block at document start")
	}
	if len(resolver.queries) != 1 || resolver.queries[0] != "Meiji Shrine in Tokyo" {
		t.Fatalf("expected destination-scoped query, got %v", resolver.queries)
	}
}

func TestEnhance_SkipsOccurrencesInsideAnchors(t *testing.T) {
	resolver := &stubResolver{ids: map[string]string{"Meiji Shrine": "pid123"}}
	e := NewEnhancer(resolver)

	doc := `<li>Visit Meiji Shrine</li><li><a href="https://example.com">Meiji Shrine</a></li>`
	got := e.Enhance(context.Background(), doc, "Tokyo")

	if !strings.Contains(got, `<a href="https://example.com">Meiji Shrine</a>`) {
		t.Error("expected existing anchor left untouched")
	}
	if strings.Count(got, "place_id:pid123") != 1 {
		t.Errorf("expected exactly one new link, got %d", strings.Count(got, "place_id:pid123"))
	}
}

func TestEnhance_LookupFailureLeavesTextUnchanged(t *testing.T) {
	resolver := &stubResolver{err: errors.New("quota exceeded")}
	e := NewEnhancer(resolver)

	doc := `<li>Visit Meiji Shrine</li>`
	got := e.Enhance(context.Background(), doc, "Tokyo")

	if got != styleBlock+doc {
		t.Fatalf("expected only style injection on lookup failure, got:\n%s", got)
	}
}

func TestEnhance_NoMatchIsSilent(t *testing.T) {
	resolver := &stubResolver{ids: map[string]string{}}
	e := NewEnhancer(resolver)

	doc := `<li>Visit Meiji Shrine</li>`
	if got := e.Enhance(context.Background(), doc, "Tokyo"); got != styleBlock+doc {
		t.Fatalf("expected unmatched name left as plain text, got:\n%s", got)
	}
}

func TestEnhance_NilResolver(t *testing.T) {
	e := NewEnhancer(nil)
	doc := `<li>Dinner at Warung Bali ($30)</li>`
	got := e.Enhance(context.Background(), doc, "Bali")
	if !strings.Contains(got, `<span class="price">$30</span>`) {
		t.Error("expected price formatting to run without a resolver")
	}
	if strings.Contains(got, "place-link\">") {
		t.Error("expected no links without a resolver")
	}
}

func TestInjectStyles_Idempotent(t *testing.T) {
	once := InjectStyles("<p>hi</p>")
	if InjectStyles(once) != once {
		t.Error("expected second injection to be a no-op")
	}
}
