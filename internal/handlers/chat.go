package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ukydev/wayfarer/internal/chat"
)

// ChatHandler serves the assistant conversations.
type ChatHandler struct {
	Sessions *chat.Manager
}

// NewChatHandler creates a chat handler.
func NewChatHandler(m *chat.Manager) *ChatHandler {
	return &ChatHandler{Sessions: m}
}

// Send handles POST /api/chat: one conversation turn. An omitted
// session id starts a new conversation; the assigned id comes back in
// the response.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, session := h.Sessions.Session(body.SessionID)
	reply, err := session.Send(r.Context(), body.Message)
	if err != nil && errors.Is(err, chat.ErrEmptyMessage) {
		RespondWithError(w, http.StatusBadRequest, "Message is required")
		return
	}
	// A failed remote turn still yields a fallback reply; the
	// conversation continues rather than surfacing a raw error.

	RespondWithJSON(w, http.StatusOK, M{"sessionId": id, "reply": reply})
}

// History handles GET /api/chat/:session.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, session := h.Sessions.Session(ps.ByName("session"))
	RespondWithJSON(w, http.StatusOK, M{"sessionId": id, "messages": session.Messages()})
}
