package booking_drafts

import (
	"context"
	"encoding/json"
)

// DraftStore keeps in-progress booking wizard drafts per user
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft json.RawMessage) error
	Get(ctx context.Context, sessionID string) (json.RawMessage, error)
	Delete(ctx context.Context, sessionID string) error
}

// Logger interface for request logging
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
