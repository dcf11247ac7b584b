// README: Chat handler (conversational schedule edits over a stored session).
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ldecaneva/NomadDay/internal/session"
	"github.com/ldecaneva/NomadDay/internal/trip"
)

const chatTimeout = 45 * time.Second

type ChatHandler struct {
	planner  *trip.Planner
	sessions SessionStore
}

func NewChatHandler(planner *trip.Planner, sessions SessionStore) *ChatHandler {
	return &ChatHandler{planner: planner, sessions: sessions}
}

type chatReq struct {
	// SessionID addresses a stored schedule; alternatively the schedule
	// and form may be supplied inline.
	SessionID string     `json:"sessionId"`
	Message   string     `json:"message"`
	Schedule  string     `json:"schedule,omitempty"`
	Form      *trip.Form `json:"form,omitempty"`
}

// Chat handles POST /api/chat. A structural reply from the assistant
// replaces the session's schedule; a conversational one leaves it alone.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	var state session.State
	if req.SessionID != "" {
		var err error
		state, err = h.sessions.Get(ctx, req.SessionID)
		if err != nil {
			writeTripError(c, err)
			return
		}
	} else {
		if req.Form == nil {
			writeError(c, http.StatusBadRequest, "sessionId or form is required")
			return
		}
		state = session.State{Document: req.Schedule, Form: *req.Form}
	}
	if req.Schedule != "" {
		state.Document = req.Schedule
	}

	res, err := h.planner.ChatTurn(ctx, state.Form, state.Document, req.Message)
	if err != nil {
		writeTripError(c, err)
		return
	}

	if res.UpdatedDocument != "" && req.SessionID != "" {
		state.Document = res.UpdatedDocument
		if err := h.sessions.Replace(ctx, req.SessionID, state); err != nil {
			log.Printf("chat: failed to persist session %s: %v", req.SessionID, err)
		}
	}

	writeJSON(c, http.StatusOK, gin.H{
		"response":        res.Reply,
		"updatedSchedule": res.UpdatedDocument,
	})
}
