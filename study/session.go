// Package study drives one pass over a deck's due cards: show the front,
// flip, grade, move on. The session is a plain state machine over a fixed
// card slice; nothing about it is persisted, and each graded answer is
// handed to a Reviewer to reschedule the card.
package study

import (
	"context"
	"errors"

	"github.com/andrewpaige1/studycards-api/models"
)

var (
	// ErrNotFlipped rejects grading a card whose answer has not been shown.
	ErrNotFlipped = errors.New("study: flip the card before answering")
	// ErrSessionDone rejects transitions on a completed session.
	ErrSessionDone = errors.New("study: session already completed")
)

// Reviewer reschedules a card after a graded answer. The store implements it.
type Reviewer interface {
	Review(ctx context.Context, cardPublicID string, wasCorrect bool) (models.Flashcard, error)
}

// Session walks a fixed, pre-fetched sequence of due cards. It starts on the
// first card face down and completes once every card has been answered.
type Session struct {
	cards    []models.Flashcard
	reviewer Reviewer

	index   int
	faceUp  bool
	visited map[string]struct{}
}

func NewSession(cards []models.Flashcard, reviewer Reviewer) *Session {
	return &Session{
		cards:    cards,
		reviewer: reviewer,
		visited:  make(map[string]struct{}, len(cards)),
	}
}

// Current returns the card being presented, or false once the session is done.
func (s *Session) Current() (models.Flashcard, bool) {
	if s.Completed() {
		return models.Flashcard{}, false
	}
	return s.cards[s.index], true
}

func (s *Session) Completed() bool {
	return s.index >= len(s.cards)
}

// FaceUp reports whether the current card is showing its back.
func (s *Session) FaceUp() bool {
	return s.faceUp
}

// Progress returns how many cards have been answered and the session length.
func (s *Session) Progress() (answered, total int) {
	return len(s.visited), len(s.cards)
}

// Flip toggles the current card between front and back. It never advances.
func (s *Session) Flip() error {
	if s.Completed() {
		return ErrSessionDone
	}
	s.faceUp = !s.faceUp
	return nil
}

// Answer grades the current card and advances to the next one. The card must
// be face up; answering face down is rejected before the store is called. If
// rescheduling fails the session does not move, so the caller can retry the
// same card.
func (s *Session) Answer(ctx context.Context, wasCorrect bool) (models.Flashcard, error) {
	if s.Completed() {
		return models.Flashcard{}, ErrSessionDone
	}
	if !s.faceUp {
		return models.Flashcard{}, ErrNotFlipped
	}

	card := s.cards[s.index]
	updated, err := s.reviewer.Review(ctx, card.PublicID, wasCorrect)
	if err != nil {
		return models.Flashcard{}, err
	}

	s.visited[card.PublicID] = struct{}{}
	s.index++
	s.faceUp = false
	return updated, nil
}
