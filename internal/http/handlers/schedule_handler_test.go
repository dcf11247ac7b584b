// README: Handler tests covering generation, chat, events and export endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ldecaneva/NomadDay/internal/http/handlers"
	"github.com/ldecaneva/NomadDay/internal/session"
	"github.com/ldecaneva/NomadDay/internal/trip"
)

// stubLLM is a test double for ai.Provider.
type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Generate(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

// memSessions is an in-memory stand-in for the Redis session store.
type memSessions struct {
	states map[string]session.State
	next   int
}

func newMemSessions() *memSessions {
	return &memSessions{states: map[string]session.State{}}
}

func (m *memSessions) Create(_ context.Context, state session.State) (string, error) {
	m.next++
	id := "sess-" + string(rune('0'+m.next))
	m.states[id] = state
	return id, nil
}

func (m *memSessions) Get(_ context.Context, id string) (session.State, error) {
	state, ok := m.states[id]
	if !ok {
		return session.State{}, session.ErrNotFound
	}
	return state, nil
}

func (m *memSessions) Replace(_ context.Context, id string, state session.State) error {
	m.states[id] = state
	return nil
}

func buildTestRouter(llm *stubLLM, sessions handlers.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	planner := trip.NewPlanner(llm, nil, nil)
	r := gin.New()
	sh := handlers.NewScheduleHandler(planner, sessions)
	ch := handlers.NewChatHandler(planner, sessions)
	r.POST("/api/schedule", sh.Generate)
	r.POST("/api/schedule/events", sh.Events)
	r.POST("/api/schedule/export", sh.Export)
	r.POST("/api/schedule/export/ics", sh.ExportICS)
	r.POST("/api/chat", ch.Chat)
	return r
}

func doRequest(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validFormBody() map[string]any {
	return map[string]any{"form": map[string]any{
		"destination": "Tokyo",
		"duration":    "5 days",
		"tripType":    "hybrid",
		"budget":      "$3000",
	}}
}

func TestGenerate_Success(t *testing.T) {
	sessions := newMemSessions()
	r := buildTestRouter(&stubLLM{reply: "<h2>Your Schedule</h2>"}, sessions)

	w := doRequest(r, "/api/schedule", validFormBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Schedule  string `json:"schedule"`
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Schedule != "<h2>Your Schedule</h2>" {
		t.Errorf("unexpected schedule %q", resp.Schedule)
	}
	if resp.SessionID == "" {
		t.Error("expected a session id")
	}
	if _, err := sessions.Get(context.Background(), resp.SessionID); err != nil {
		t.Errorf("expected session stored, got %v", err)
	}
}

func TestGenerate_ValidationError(t *testing.T) {
	r := buildTestRouter(&stubLLM{reply: "unused"}, newMemSessions())
	w := doRequest(r, "/api/schedule", map[string]any{"form": map[string]any{"duration": "5 days"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_UpstreamFailureCarriesFallback(t *testing.T) {
	r := buildTestRouter(&stubLLM{err: errors.New("rate limited")}, newMemSessions())
	w := doRequest(r, "/api/schedule", validFormBody())
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var resp struct {
		Error            string `json:"error"`
		FallbackSchedule string `json:"fallbackSchedule"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.FallbackSchedule, "Schedule for Tokyo") {
		t.Errorf("expected fallback schedule, got %q", resp.FallbackSchedule)
	}
}

func TestChat_UpdatesSession(t *testing.T) {
	sessions := newMemSessions()
	id, _ := sessions.Create(context.Background(), session.State{
		Document: "<h2>old</h2>",
		Form:     trip.Form{Destination: "Tokyo", Duration: "5 days", TripType: "hybrid"},
	})
	r := buildTestRouter(&stubLLM{reply: "Moved it. <h3>Day 1</h3><ul><li>6:00 PM: Dinner</li></ul>"}, sessions)

	w := doRequest(r, "/api/chat", map[string]any{"sessionId": id, "message": "move dinner"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Response        string `json:"response"`
		UpdatedSchedule string `json:"updatedSchedule"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Response, "Schedule has been updated!") {
		t.Errorf("unexpected response %q", resp.Response)
	}

	state, _ := sessions.Get(context.Background(), id)
	if state.Document != resp.UpdatedSchedule || state.Document == "<h2>old</h2>" {
		t.Errorf("expected session document replaced, got %q", state.Document)
	}
}

func TestChat_InlineScheduleAndForm(t *testing.T) {
	r := buildTestRouter(&stubLLM{reply: "The weather is mild in spring."}, newMemSessions())
	w := doRequest(r, "/api/chat", map[string]any{
		"message":  "how is the weather?",
		"schedule": "<h2>Day 1</h2>",
		"form": map[string]any{
			"destination": "Tokyo",
			"duration":    "5 days",
			"tripType":    "leisure",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for inline chat, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChat_MissingSessionAndForm(t *testing.T) {
	r := buildTestRouter(&stubLLM{reply: "unused"}, newMemSessions())
	w := doRequest(r, "/api/chat", map[string]any{"message": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChat_UnknownSession(t *testing.T) {
	r := buildTestRouter(&stubLLM{reply: "unused"}, newMemSessions())
	w := doRequest(r, "/api/chat", map[string]any{"sessionId": "nope", "message": "hi"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestEvents_ParsesInlineSchedule(t *testing.T) {
	r := buildTestRouter(&stubLLM{}, newMemSessions())
	body := map[string]any{
		"schedule":  "<h3>Day 1</h3><ul><li>9:00 AM: Work session</li></ul>",
		"startDate": "2026-03-02",
	}
	w := doRequest(r, "/api/schedule/events", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Events []struct {
			Date     string `json:"date"`
			Time     string `json:"time"`
			Title    string `json:"title"`
			Category string `json:"category"`
		} `json:"events"`
		Fallback string `json:"fallback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Date != "2026-03-02" || resp.Events[0].Category != "work" {
		t.Fatalf("unexpected events %+v", resp.Events)
	}
	if resp.Fallback != "" {
		t.Errorf("expected no fallback, got %q", resp.Fallback)
	}
}

func TestEvents_GarbageStillSucceeds(t *testing.T) {
	r := buildTestRouter(&stubLLM{}, newMemSessions())
	w := doRequest(r, "/api/schedule/events", map[string]any{
		"schedule": "no structure here at all",
		"tripType": "leisure",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with placeholder events, got %d", w.Code)
	}
	var resp struct {
		Events   []json.RawMessage `json:"events"`
		Fallback string            `json:"fallback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Fallback != "placeholder" {
		t.Errorf("expected placeholder fallback, got %q", resp.Fallback)
	}
	if len(resp.Events) == 0 {
		t.Error("expected placeholder events")
	}
}

func TestEvents_MissingScheduleAndSession(t *testing.T) {
	r := buildTestRouter(&stubLLM{}, newMemSessions())
	w := doRequest(r, "/api/schedule/events", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExport_FirstEventURL(t *testing.T) {
	r := buildTestRouter(&stubLLM{}, newMemSessions())
	body := map[string]any{
		"schedule":  "<h3>Day 1</h3><ul><li>9:00 AM: Work session</li><li>7:00 PM: Dinner</li></ul>",
		"startDate": "2026-03-02",
	}
	w := doRequest(r, "/api/schedule/export", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		URL       string   `json:"url"`
		EventURLs []string `json:"eventUrls"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.URL, "calendar.google.com") || !strings.Contains(resp.URL, "Work+session") {
		t.Errorf("unexpected export url %s", resp.URL)
	}
	if len(resp.EventURLs) != 2 || resp.EventURLs[0] != resp.URL {
		t.Errorf("expected per-event urls led by the first event, got %v", resp.EventURLs)
	}
}

func TestExportICS_AllEvents(t *testing.T) {
	r := buildTestRouter(&stubLLM{}, newMemSessions())
	body := map[string]any{
		"schedule":  "<h3>Day 1</h3><ul><li>9:00 AM: Work session</li><li>7:00 PM: Dinner</li></ul>",
		"startDate": "2026-03-02",
	}
	w := doRequest(r, "/api/schedule/export/ics", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("expected text/calendar, got %s", ct)
	}
	if got := strings.Count(w.Body.String(), "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events in ICS, got %d", got)
	}
}
