package decks

import (
	"time"

	"github.com/andrewpaige1/studycards-api/models"
	"github.com/andrewpaige1/studycards-api/srs"
)

// Stats holds the derived per-deck counters. They are recomputed on every
// read and never persisted.
type Stats struct {
	TotalCards    int `json:"total_cards"`
	CardsToReview int `json:"cards_to_review"`
	NewCards      int `json:"new_cards"`
}

// ComputeStats counts a deck's cards at the reference instant. A card whose
// NextReview equals now exactly still counts as due. Both sides of the
// comparison are normalized to UTC so a store that hands back local-zone
// timestamps cannot skew the boundary.
func ComputeStats(cards []models.Flashcard, now time.Time) Stats {
	now = now.UTC()

	stats := Stats{TotalCards: len(cards)}
	for _, card := range cards {
		if !card.NextReview.UTC().After(now) {
			stats.CardsToReview++
		}
		if card.Difficulty == srs.New {
			stats.NewCards++
		}
	}
	return stats
}
