package models

import (
	"gorm.io/gorm"
)

// Deck represents a named collection of flashcards. Decks may nest: ParentID
// points at another deck, nil for top-level decks. The parent chain must stay
// acyclic; re-parenting is checked at write time.
type Deck struct {
	gorm.Model
	PublicID    string `gorm:"size:100;uniqueIndex"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Color       string `gorm:"size:50"` // palette token, stored verbatim

	ParentID *uint `gorm:"index"`
	Parent   *Deck `gorm:"foreignKey:ParentID" json:"-"`

	Flashcards []Flashcard `gorm:"foreignKey:DeckID" json:"-"`
}

// DeckPatch names exactly the deck fields an update may touch. Nil means
// "leave unchanged". Re-parenting distinguishes "not provided" (Parent nil)
// from "move to top level" (Parent set, *Parent empty).
type DeckPatch struct {
	Name        *string
	Description *string
	Color       *string
	Parent      *string // public ID of the new parent, "" for top level
}
