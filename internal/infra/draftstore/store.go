// Package draftstore keeps in-progress booking wizard drafts in Redis so
// a customer can resume a half-filled booking from another tab or after a
// reload. Drafts are opaque JSON documents scoped to a session and expire
// on their own.
package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// MaxDraftBytes caps a single draft document. Drafts hold form state,
// not photos; anything bigger is a client bug.
const MaxDraftBytes = 64 << 10

// Store is a session-scoped draft store on Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a draft store. ttl bounds how long an abandoned draft
// survives.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("booking:draft:%s", sessionID)
}

// Save stores the draft document for a session, resetting its TTL
func (s *Store) Save(ctx context.Context, sessionID string, draft json.RawMessage) error {
	if len(draft) > MaxDraftBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrDraftTooLarge, len(draft), MaxDraftBytes)
	}

	if err := s.client.Set(ctx, draftKey(sessionID), []byte(draft), s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set draft: %v", ErrStore, err)
	}

	return nil
}

// Get returns the draft document for a session
func (s *Store) Get(ctx context.Context, sessionID string) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get draft: %v", ErrStore, err)
	}

	return json.RawMessage(data), nil
}

// Delete drops the draft for a session. Deleting an absent draft is a
// no-op; the wizard clears drafts after every successful booking.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del draft: %v", ErrStore, err)
	}

	return nil
}
