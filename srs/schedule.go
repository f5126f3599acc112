package srs

import (
	"fmt"
	"time"
)

// Update holds the scheduling fields recomputed by a review. The three fields
// are written back to the store together or not at all.
type Update struct {
	Difficulty  Difficulty
	NextReview  time.Time
	ReviewCount int
}

// Schedule computes the scheduling update for one completed review.
//
// The interval is added as calendar days (AddDate), not fixed 24h blocks, so
// "review in 3 days" lands on the same wall-clock time three dates later even
// across DST changes. reviewCount must be the latest stored value; the caller
// is responsible for reading it fresh immediately before committing the update.
func Schedule(current Difficulty, reviewCount int, wasCorrect bool, now time.Time) (Update, error) {
	if !current.Valid() {
		return Update{}, fmt.Errorf("schedule review: difficulty %d: %w", current, ErrInvalidDifficulty)
	}

	next, intervalDays := NextState(current, wasCorrect)
	return Update{
		Difficulty:  next,
		NextReview:  now.AddDate(0, 0, intervalDays),
		ReviewCount: reviewCount + 1,
	}, nil
}
