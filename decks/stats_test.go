package decks

import (
	"testing"
	"time"

	"github.com/andrewpaige1/studycards-api/models"
	"github.com/andrewpaige1/studycards-api/srs"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	cards := []models.Flashcard{
		{Difficulty: srs.New, NextReview: now.Add(-time.Hour)},
		{Difficulty: srs.Easy, NextReview: now.Add(-24 * time.Hour)},
		{Difficulty: srs.Medium, NextReview: now.Add(48 * time.Hour)},
		{Difficulty: srs.New, NextReview: now.Add(time.Hour)},
	}

	stats := ComputeStats(cards, now)

	if stats.TotalCards != 4 {
		t.Errorf("total = %d, want 4", stats.TotalCards)
	}
	if stats.CardsToReview != 2 {
		t.Errorf("to review = %d, want 2", stats.CardsToReview)
	}
	if stats.NewCards != 2 {
		t.Errorf("new = %d, want 2", stats.NewCards)
	}
}

func TestComputeStatsDueBoundary(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	exactlyDue := ComputeStats([]models.Flashcard{{NextReview: now}}, now)
	if exactlyDue.CardsToReview != 1 {
		t.Errorf("card due exactly at now not counted as due")
	}

	justAfter := ComputeStats([]models.Flashcard{{NextReview: now.Add(time.Second)}}, now)
	if justAfter.CardsToReview != 0 {
		t.Errorf("card due one second after now counted as due")
	}
}

func TestComputeStatsNormalizesZones(t *testing.T) {
	// Same instant expressed in a non-UTC zone must still count as due.
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	zone := time.FixedZone("UTC+2", 2*60*60)

	stats := ComputeStats([]models.Flashcard{{NextReview: now.In(zone)}}, now.In(zone))
	if stats.CardsToReview != 1 {
		t.Errorf("zone-shifted card not counted as due")
	}
}

func TestComputeStatsPure(t *testing.T) {
	now := time.Now()
	cards := []models.Flashcard{
		{Difficulty: srs.New, NextReview: now.Add(-time.Minute)},
		{Difficulty: srs.Hard, NextReview: now.Add(time.Minute)},
	}

	first := ComputeStats(cards, now)
	second := ComputeStats(cards, now)
	if first != second {
		t.Errorf("ComputeStats not idempotent: %+v vs %+v", first, second)
	}
}

func TestComputeStatsEmptyDeck(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	if stats != (Stats{}) {
		t.Errorf("stats for empty deck = %+v, want zero", stats)
	}
}
