package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/andrewpaige1/studycards-api/srs"
)

// Flashcard represents an individual flashcard and its scheduling state. New
// cards start at difficulty 0 with NextReview set to the creation instant, so
// they are due immediately. Only the review scheduler moves Difficulty,
// NextReview and ReviewCount; explicit edits touch Front and Back only.
type Flashcard struct {
	gorm.Model
	PublicID string `gorm:"size:100;uniqueIndex"`
	Front    string `gorm:"not null;size:1000"`
	Back     string `gorm:"not null;size:1000"`

	DeckID uint `gorm:"not null;index"`
	Deck   Deck `gorm:"foreignKey:DeckID" json:"-"`

	Difficulty  srs.Difficulty `gorm:"default:0"`
	NextReview  time.Time      `gorm:"index"`
	ReviewCount int            `gorm:"default:0"`
}

// FlashcardPatch names the card fields an explicit edit may touch. The
// scheduling fields are deliberately absent; they change only through a review.
type FlashcardPatch struct {
	Front *string
	Back  *string
}
