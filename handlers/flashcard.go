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

func (h *Handler) GetFlashcardsForDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	cards, err := h.Store.Cards(r.Context(), deckID)
	if err != nil {
		log.Printf("GetFlashcardsForDeck: deck %s: %v", deckID, err)
		storeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

// GetStudyCards seeds a study session: the deck's due cards, soonest first,
// at most store.StudyBatchSize of them.
func (h *Handler) GetStudyCards(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	cards, err := h.Store.DueCards(r.Context(), deckID, time.Now().UTC(), store.StudyBatchSize)
	if err != nil {
		log.Printf("GetStudyCards: deck %s: %v", deckID, err)
		storeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (h *Handler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	type CreateFlashcardRequest struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}

	var req CreateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateFlashcard: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Front == "" || req.Back == "" {
		http.Error(w, "Front and back text are required", http.StatusUnprocessableEntity)
		return
	}

	card, err := h.Store.CreateCard(r.Context(), deckID, req.Front, req.Back)
	if err != nil {
		log.Printf("CreateFlashcard: deck %s: %v", deckID, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "flashcard", Op: events.OpCreated, PublicID: card.PublicID, DeckID: deckID})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(card)
}

func (h *Handler) UpdateFlashcardByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	flashcardID := r.PathValue("flashcardID")

	type UpdateFlashcardRequest struct {
		Front *string `json:"front,omitempty"`
		Back  *string `json:"back,omitempty"`
	}

	var req UpdateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("UpdateFlashcardByID: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if (req.Front != nil && *req.Front == "") || (req.Back != nil && *req.Back == "") {
		http.Error(w, "Front and back text must not be empty", http.StatusUnprocessableEntity)
		return
	}

	card, err := h.Store.UpdateCard(r.Context(), flashcardID, models.FlashcardPatch{
		Front: req.Front,
		Back:  req.Back,
	})
	if err != nil {
		log.Printf("UpdateFlashcardByID: flashcard %s: %v", flashcardID, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "flashcard", Op: events.OpUpdated, PublicID: card.PublicID, DeckID: deckID})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(card)
}

func (h *Handler) DeleteFlashcardByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	flashcardID := r.PathValue("flashcardID")

	if err := h.Store.DeleteCard(r.Context(), flashcardID); err != nil {
		log.Printf("DeleteFlashcardByID: flashcard %s: %v", flashcardID, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "flashcard", Op: events.OpDeleted, PublicID: flashcardID, DeckID: deckID})

	w.WriteHeader(http.StatusNoContent)
}

// ReviewFlashcard records one graded answer for a card and returns it with
// its new scheduling state.
func (h *Handler) ReviewFlashcard(w http.ResponseWriter, r *http.Request) {
	flashcardID := r.PathValue("flashcardID")

	type ReviewRequest struct {
		WasCorrect bool `json:"was_correct"`
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ReviewFlashcard: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := h.Store.ReviewCard(r.Context(), flashcardID, req.WasCorrect, time.Now().UTC())
	if err != nil {
		log.Printf("ReviewFlashcard: flashcard %s: %v", flashcardID, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "flashcard", Op: events.OpReviewed, PublicID: card.PublicID})
	log.Printf("ReviewFlashcard: flashcard %s now %s, due %s", card.PublicID, card.Difficulty, card.NextReview.Format(time.RFC3339))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(card)
}
