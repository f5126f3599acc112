package store

import "errors"

// Sentinel errors surfaced by store operations. Check with errors.Is; anything
// else coming out of the store is a driver or connectivity failure the caller
// may retry.
var (
	ErrNotFound        = errors.New("store: record not found")
	ErrDeckCycle       = errors.New("store: re-parenting would create a deck cycle")
	ErrDeckHasChildren = errors.New("store: deck still has sub-decks")
)
