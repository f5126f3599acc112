package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/studycards-api/events"
	"github.com/andrewpaige1/studycards-api/srs"
	"github.com/andrewpaige1/studycards-api/store"
	"github.com/andrewpaige1/studycards-api/study"
)

// Handler carries the store and the change bus into every route.
type Handler struct {
	Store *store.Store
	Bus   *events.Bus

	sessions sessionRegistry
}

// storeError maps store failures onto HTTP statuses: missing rows are 404,
// structural rejections are 409, anything else is treated as the store being
// unreachable and reported retryable.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, srs.ErrInvalidDifficulty):
		http.Error(w, "Card difficulty out of range", http.StatusUnprocessableEntity)
	case errors.Is(err, store.ErrDeckCycle):
		http.Error(w, "Re-parenting would create a cycle", http.StatusConflict)
	case errors.Is(err, store.ErrDeckHasChildren):
		http.Error(w, "Deck still has sub-decks; pass cascade=true to delete them too", http.StatusConflict)
	case errors.Is(err, study.ErrNotFlipped):
		http.Error(w, "Flip the card before answering", http.StatusConflict)
	case errors.Is(err, study.ErrSessionDone):
		http.Error(w, "Session already completed", http.StatusConflict)
	default:
		http.Error(w, "Store unavailable, try again", http.StatusServiceUnavailable)
	}
}
