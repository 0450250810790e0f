package draftstore

import "errors"

var (
	// ErrDraftNotFound is returned when the session has no saved draft
	ErrDraftNotFound = errors.New("draftstore: draft not found")

	// ErrDraftTooLarge is returned when the draft document exceeds the size cap
	ErrDraftTooLarge = errors.New("draftstore: draft exceeds size limit")

	// ErrStore is returned on Redis failures
	ErrStore = errors.New("draftstore: store error")
)
