package transcript

import (
	"context"
	"time"
)

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a session's transcript. Turns are immutable
// once appended; the append order is the transcript order.
type Turn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Redacted  bool      `json:"redacted"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists and retrieves session transcripts.
type Store interface {
	Append(ctx context.Context, turn Turn) error
	BySession(ctx context.Context, sessionID string, limit int) ([]Turn, error)
	Close() error
}
