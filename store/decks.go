package store

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/andrewpaige1/studycards-api/decks"
	"github.com/andrewpaige1/studycards-api/models"
)

// CreateDeckParams carries the caller-supplied fields for a new deck. Parent
// is the public ID of the parent deck, empty for a top-level deck.
type CreateDeckParams struct {
	Name        string
	Description string
	Color       string
	Parent      string
}

func (s *Store) Decks(ctx context.Context) ([]models.Deck, error) {
	var all []models.Deck
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("fetch decks: %w", err)
	}
	return all, nil
}

func (s *Store) DeckByPublicID(ctx context.Context, publicID string) (models.Deck, error) {
	var deck models.Deck
	err := s.db.WithContext(ctx).Where("public_id = ?", publicID).First(&deck).Error
	if err != nil {
		return models.Deck{}, notFound(err, "deck %s", publicID)
	}
	return deck, nil
}

func (s *Store) CreateDeck(ctx context.Context, params CreateDeckParams) (models.Deck, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return models.Deck{}, fmt.Errorf("generate deck id: %w", err)
	}

	deck := models.Deck{
		PublicID:    publicID,
		Name:        params.Name,
		Description: params.Description,
		Color:       params.Color,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if params.Parent != "" {
			var parent models.Deck
			if err := tx.Where("public_id = ?", params.Parent).First(&parent).Error; err != nil {
				return notFound(err, "parent deck %s", params.Parent)
			}
			deck.ParentID = &parent.ID
		}
		return tx.Create(&deck).Error
	})
	if err != nil {
		return models.Deck{}, err
	}
	return deck, nil
}

// UpdateDeck applies a typed patch to the deck. Re-parenting that would make
// the deck an ancestor of itself is rejected with ErrDeckCycle before
// anything is written.
func (s *Store) UpdateDeck(ctx context.Context, publicID string, patch models.DeckPatch) (models.Deck, error) {
	var deck models.Deck
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("public_id = ?", publicID).First(&deck).Error; err != nil {
			return notFound(err, "deck %s", publicID)
		}

		if patch.Name != nil {
			deck.Name = *patch.Name
		}
		if patch.Description != nil {
			deck.Description = *patch.Description
		}
		if patch.Color != nil {
			deck.Color = *patch.Color
		}
		if patch.Parent != nil {
			if *patch.Parent == "" {
				deck.ParentID = nil
			} else {
				var parent models.Deck
				if err := tx.Where("public_id = ?", *patch.Parent).First(&parent).Error; err != nil {
					return notFound(err, "parent deck %s", *patch.Parent)
				}
				cycle, err := wouldCycle(tx, deck.ID, parent.ID)
				if err != nil {
					return err
				}
				if cycle {
					return fmt.Errorf("deck %s under %s: %w", publicID, *patch.Parent, ErrDeckCycle)
				}
				deck.ParentID = &parent.ID
			}
		}

		return tx.Save(&deck).Error
	})
	if err != nil {
		return models.Deck{}, err
	}
	return deck, nil
}

// wouldCycle walks the parent chain upward from the candidate parent. Hitting
// deckID means the deck would become its own ancestor. A repeated ID means
// the chain is already cyclic upstream; treat that as a cycle too rather than
// looping forever.
func wouldCycle(tx *gorm.DB, deckID, parentID uint) (bool, error) {
	seen := make(map[uint]bool)
	current := parentID
	for {
		if current == deckID || seen[current] {
			return true, nil
		}
		seen[current] = true

		var parent models.Deck
		if err := tx.Select("id", "parent_id").First(&parent, current).Error; err != nil {
			return false, notFound(err, "deck row %d", current)
		}
		if parent.ParentID == nil {
			return false, nil
		}
		current = *parent.ParentID
	}
}

// DeleteDeck removes a deck and its cards. While the deck still has sub-decks
// the delete is blocked with ErrDeckHasChildren unless cascade is set, in
// which case the whole subtree and every card in it goes.
func (s *Store) DeleteDeck(ctx context.Context, publicID string, cascade bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deck models.Deck
		if err := tx.Where("public_id = ?", publicID).First(&deck).Error; err != nil {
			return notFound(err, "deck %s", publicID)
		}

		var children int64
		if err := tx.Model(&models.Deck{}).Where("parent_id = ?", deck.ID).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 && !cascade {
			return fmt.Errorf("deck %s: %w", publicID, ErrDeckHasChildren)
		}

		ids, err := subtreeIDs(tx, deck.ID)
		if err != nil {
			return err
		}
		if err := tx.Where("deck_id IN ?", ids).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Deck{}).Error
	})
}

// subtreeIDs collects the row IDs of a deck and every descendant with a BFS
// over a children index built from one query.
func subtreeIDs(tx *gorm.DB, rootID uint) ([]uint, error) {
	var all []models.Deck
	if err := tx.Select("id", "parent_id").Find(&all).Error; err != nil {
		return nil, err
	}

	childrenOf := make(map[uint][]uint, len(all))
	for _, d := range all {
		if d.ParentID != nil {
			childrenOf[*d.ParentID] = append(childrenOf[*d.ParentID], d.ID)
		}
	}

	ids := []uint{rootID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, childrenOf[ids[i]]...)
	}
	return ids, nil
}

// DeckTree fetches every deck with its cards and assembles the stats-annotated
// forest. Two queries regardless of deck count; the counters are derived on
// each call and never stored.
func (s *Store) DeckTree(ctx context.Context, now time.Time) ([]*decks.DeckWithStats, error) {
	all, err := s.Decks(ctx)
	if err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err := s.db.WithContext(ctx).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("fetch cards: %w", err)
	}

	byDeck := make(map[uint][]models.Flashcard, len(all))
	for _, card := range cards {
		byDeck[card.DeckID] = append(byDeck[card.DeckID], card)
	}

	nodes := make([]*decks.DeckWithStats, 0, len(all))
	for _, deck := range all {
		nodes = append(nodes, &decks.DeckWithStats{
			Deck:  deck,
			Stats: decks.ComputeStats(byDeck[deck.ID], now),
		})
	}
	return decks.BuildTree(nodes), nil
}
