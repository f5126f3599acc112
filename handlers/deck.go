package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/andrewpaige1/studycards-api/events"
	"github.com/andrewpaige1/studycards-api/models"
	"github.com/andrewpaige1/studycards-api/store"
)

// GetDecks returns every deck as a stats-annotated forest. The counters and
// the tree are recomputed on each call, so a review or edit shows up on the
// next fetch without any cache bookkeeping.
func (h *Handler) GetDecks(w http.ResponseWriter, r *http.Request) {
	forest, err := h.Store.DeckTree(r.Context(), time.Now().UTC())
	if err != nil {
		log.Printf("GetDecks: failed to assemble deck tree: %v", err)
		storeError(w, err)
		return
	}

	// Decks whose declared parent could not be honored are kept as roots and
	// flagged; note them so a broken parent chain does not go unnoticed.
	for _, root := range forest {
		if root.Orphaned {
			log.Printf("GetDecks: deck %s has an unresolvable parent, shown as root", root.PublicID)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(forest)
}

func (h *Handler) GetDeckByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	deck, err := h.Store.DeckByPublicID(r.Context(), deckID)
	if err != nil {
		log.Printf("GetDeckByID: deck %s: %v", deckID, err)
		storeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deck)
}

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	type CreateDeckRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Parent      string `json:"parent,omitempty"`
	}

	var req CreateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateDeck: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Deck name is required", http.StatusUnprocessableEntity)
		return
	}

	deck, err := h.Store.CreateDeck(r.Context(), store.CreateDeckParams{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Parent:      req.Parent,
	})
	if err != nil {
		log.Printf("CreateDeck: failed to create deck %q: %v", req.Name, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "deck", Op: events.OpCreated, PublicID: deck.PublicID, DeckID: deck.PublicID})
	log.Printf("CreateDeck: created deck %s (%q)", deck.PublicID, deck.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(deck)
}

func (h *Handler) UpdateDeckByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	type UpdateDeckRequest struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		Color       *string `json:"color,omitempty"`
		Parent      *string `json:"parent,omitempty"` // "" moves the deck to the top level
	}

	var req UpdateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("UpdateDeckByID: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name != nil && *req.Name == "" {
		http.Error(w, "Deck name must not be empty", http.StatusUnprocessableEntity)
		return
	}

	patch := models.DeckPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Parent:      req.Parent,
	}

	deck, err := h.Store.UpdateDeck(r.Context(), deckID, patch)
	if err != nil {
		log.Printf("UpdateDeckByID: deck %s: %v", deckID, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "deck", Op: events.OpUpdated, PublicID: deck.PublicID, DeckID: deck.PublicID})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deck)
}

func (h *Handler) DeleteDeckByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	cascade := r.URL.Query().Get("cascade") == "true"

	if err := h.Store.DeleteDeck(r.Context(), deckID, cascade); err != nil {
		log.Printf("DeleteDeckByID: deck %s (cascade=%t): %v", deckID, cascade, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "deck", Op: events.OpDeleted, PublicID: deckID, DeckID: deckID})
	log.Printf("DeleteDeckByID: deleted deck %s (cascade=%t)", deckID, cascade)

	w.WriteHeader(http.StatusNoContent)
}
