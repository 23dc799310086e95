package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wayfarer/internal/models"
)

// Greeting opens every new session.
const Greeting = "Hi there! I'm your travel buddy. Ask me anything about destinations, seasons or budgets."

// FallbackReply stands in for the assistant when the remote call fails.
const FallbackReply = "Hmm, something glitched on my end. Try asking again?"

// ErrEmptyMessage rejects blank input before any remote call.
var ErrEmptyMessage = errors.New("message is empty")

// Responder is the outbound interface for one chat turn.
type Responder interface {
	Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// Session holds one conversation's transient history. Nothing here is
// ever persisted; a restart starts every conversation over.
type Session struct {
	responder Responder

	mu       sync.Mutex
	messages []models.ChatMessage
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession(r Responder) *Session {
	return &Session{
		responder: r,
		messages: []models.ChatMessage{
			{ID: uuid.NewString(), Role: models.RoleAssistant, Content: Greeting},
		},
	}
}

// Send appends the user's message, asks the responder for a reply and
// appends that too. A failed remote call still produces an assistant
// message, carrying the fallback text, so the conversation never
// dead-ends.
func (s *Session) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	history := make([]models.ChatMessage, len(s.messages))
	copy(history, s.messages)
	s.messages = append(s.messages, models.ChatMessage{
		ID: uuid.NewString(), Role: models.RoleUser, Content: text,
	})
	s.mu.Unlock()

	reply, err := s.responder.Chat(ctx, history, text)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.WithError(err).Warn("chat turn failed")
		}
		reply = FallbackReply
	}

	msg := models.ChatMessage{ID: uuid.NewString(), Role: models.RoleAssistant, Content: reply}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg, err
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Manager hands out sessions by id, creating them on demand. Sessions
// are independent of the planner and may have turns in flight while a
// generation runs.
type Manager struct {
	responder Responder

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager(r Responder) *Manager {
	return &Manager{responder: r, sessions: make(map[string]*Session)}
}

// Session returns the session for id, creating it if needed. An empty
// id gets a fresh id assigned.
func (m *Manager) Session(id string) (string, *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	s, ok := m.sessions[id]
	if !ok {
		s = NewSession(m.responder)
		m.sessions[id] = s
	}
	return id, s
}
