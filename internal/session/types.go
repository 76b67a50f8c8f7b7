package session

import (
	"time"

	"github.com/space42/astra/internal/intent"
	"github.com/space42/astra/internal/transcript"
)

// CreateRequest defines payload for opening a new chat session.
type CreateRequest struct {
	UserID string `json:"user_id"`
}

// CreateResponse returns created session metadata plus the seeded welcome turn.
type CreateResponse struct {
	SessionID       string          `json:"session_id"`
	UserID          string          `json:"user_id"`
	Status          Status          `json:"status"`
	UserType        intent.UserType `json:"user_type"`
	StartedAt       time.Time       `json:"started_at"`
	LastActivityAt  time.Time       `json:"last_activity_at"`
	InactivityTTLMS int64           `json:"inactivity_ttl_ms"`

	Welcome *transcript.Turn `json:"welcome,omitempty"`
}
