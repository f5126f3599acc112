package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/studycards-api/events"
	"github.com/andrewpaige1/studycards-api/models"
	"github.com/andrewpaige1/studycards-api/store"
	"github.com/andrewpaige1/studycards-api/study"
)

// sessionRegistry keeps in-flight study sessions in memory, keyed by a nanoid
// handed to the client. Sessions are one pass over a due batch and are gone
// on restart; the client just starts a new one.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*study.Session
}

func (r *sessionRegistry) put(id string, s *study.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions == nil {
		r.sessions = make(map[string]*study.Session)
	}
	r.sessions[id] = s
}

func (r *sessionRegistry) get(id string) (*study.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// sessionState is the wire shape of a session snapshot.
type sessionState struct {
	SessionID string            `json:"session_id"`
	Completed bool              `json:"completed"`
	FaceUp    bool              `json:"face_up"`
	Answered  int               `json:"answered"`
	Total     int               `json:"total"`
	Card      *models.Flashcard `json:"card,omitempty"`
}

func snapshot(id string, s *study.Session) sessionState {
	answered, total := s.Progress()
	state := sessionState{
		SessionID: id,
		Completed: s.Completed(),
		FaceUp:    s.FaceUp(),
		Answered:  answered,
		Total:     total,
	}
	if card, ok := s.Current(); ok {
		state.Card = &card
	}
	return state
}

// CreateSession starts a study session over the deck's due cards.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	cards, err := h.Store.DueCards(r.Context(), deckID, time.Now().UTC(), store.StudyBatchSize)
	if err != nil {
		log.Printf("CreateSession: deck %s: %v", deckID, err)
		storeError(w, err)
		return
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		log.Printf("CreateSession: failed to generate session id: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	session := study.NewSession(cards, h.Store)
	h.sessions.put(sessionID, session)
	log.Printf("CreateSession: session %s over %d due cards of deck %s", sessionID, len(cards), deckID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(snapshot(sessionID, session))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	session, ok := h.sessions.get(sessionID)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot(sessionID, session))
}

// FlipSessionCard toggles the current card between front and back.
func (h *Handler) FlipSessionCard(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	session, ok := h.sessions.get(sessionID)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	if err := session.Flip(); err != nil {
		storeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot(sessionID, session))
}

// AnswerSessionCard grades the current card. The session only advances when
// the underlying review commits; a store failure leaves it on the same card.
func (h *Handler) AnswerSessionCard(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	session, ok := h.sessions.get(sessionID)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	type AnswerRequest struct {
		WasCorrect bool `json:"was_correct"`
	}
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("AnswerSessionCard: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := session.Answer(r.Context(), req.WasCorrect)
	if err != nil {
		log.Printf("AnswerSessionCard: session %s: %v", sessionID, err)
		storeError(w, err)
		return
	}

	h.Bus.Publish(events.Event{Entity: "flashcard", Op: events.OpReviewed, PublicID: card.PublicID})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot(sessionID, session))
}
