// README: Schedule handlers (generation, event parsing, calendar export).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ldecaneva/NomadDay/internal/calendar"
	"github.com/ldecaneva/NomadDay/internal/itinerary"
	"github.com/ldecaneva/NomadDay/internal/session"
	"github.com/ldecaneva/NomadDay/internal/trip"
)

const generateTimeout = 60 * time.Second

type ScheduleHandler struct {
	planner  *trip.Planner
	sessions SessionStore
}

func NewScheduleHandler(planner *trip.Planner, sessions SessionStore) *ScheduleHandler {
	return &ScheduleHandler{planner: planner, sessions: sessions}
}

type generateReq struct {
	Form trip.Form `json:"form"`
}

// Generate handles POST /api/schedule. When the LLM is unreachable the
// response still carries a usable sample schedule in the fallback field.
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	schedule, err := h.planner.Generate(ctx, req.Form)
	if err != nil {
		if errors.Is(err, trip.ErrUpstream) {
			writeJSON(c, http.StatusBadGateway, gin.H{
				"error":            err.Error(),
				"fallbackSchedule": trip.FallbackItinerary(req.Form),
			})
			return
		}
		writeTripError(c, err)
		return
	}

	sessionID, err := h.sessions.Create(ctx, session.State{
		Document: schedule,
		Form:     req.Form,
		Created:  time.Now().UTC(),
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to store session")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"schedule":  schedule,
		"sessionId": sessionID,
	})
}

type eventsReq struct {
	SessionID string `json:"sessionId"`
	// Schedule and form fields override the session copy when set, so the
	// endpoint also works without a stored session.
	Schedule    string `json:"schedule,omitempty"`
	Destination string `json:"destination,omitempty"`
	TripType    string `json:"tripType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
}

// Events handles POST /api/schedule/events. It always responds 200 for a
// well formed request; when the document cannot be parsed the payload
// carries placeholder events plus the fallback reason.
func (h *ScheduleHandler) Events(c *gin.Context) {
	res, _, err := h.parseEvents(c)
	if err != nil {
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"events":   res.Events,
		"fallback": res.Fallback,
	})
}

// Export handles POST /api/schedule/export. The top-level url is the
// add-to-calendar link for the first event; eventUrls carries one per
// event for clients that want them all.
func (h *ScheduleHandler) Export(c *gin.Context) {
	res, _, err := h.parseEvents(c)
	if err != nil {
		return
	}
	first, err := calendar.ExportURL(res.Events)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	urls := make([]string, 0, len(res.Events))
	for _, ev := range res.Events {
		u, err := calendar.EventURL(ev)
		if err != nil {
			writeError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		urls = append(urls, u)
	}
	writeJSON(c, http.StatusOK, gin.H{"url": first, "eventUrls": urls})
}

// ExportICS handles POST /api/schedule/export/ics, returning the whole
// schedule as an iCalendar file.
func (h *ScheduleHandler) ExportICS(c *gin.Context) {
	res, destination, err := h.parseEvents(c)
	if err != nil {
		return
	}
	name := "NomadDay Schedule"
	if destination != "" {
		name = destination + " Trip"
	}
	ics, err := calendar.ICS(name, res.Events)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar", []byte(ics))
}

// parseEvents resolves the schedule document and parse options from the
// request, falling back to the stored session for anything omitted, and
// returns the parse result plus the resolved destination. On error it has
// already written the response.
func (h *ScheduleHandler) parseEvents(c *gin.Context) (itinerary.Result, string, error) {
	var req eventsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return itinerary.Result{}, "", err
	}

	doc := req.Schedule
	destination := req.Destination
	tripType := req.TripType
	if doc == "" {
		if req.SessionID == "" {
			writeError(c, http.StatusBadRequest, "schedule or sessionId is required")
			return itinerary.Result{}, "", session.ErrNotFound
		}
		state, err := h.sessions.Get(c.Request.Context(), req.SessionID)
		if err != nil {
			writeTripError(c, err)
			return itinerary.Result{}, "", err
		}
		doc = state.Document
		if destination == "" {
			destination = state.Form.Destination
		}
		if tripType == "" {
			tripType = state.Form.TripType
		}
	}

	start := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
			return itinerary.Result{}, "", err
		}
		start = parsed
	}

	res := itinerary.Parse(doc, itinerary.ParseOptions{
		Start:       start,
		TripType:    tripType,
		Destination: destination,
	})
	return res, destination, nil
}
