package store

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/andrewpaige1/studycards-api/models"
	"github.com/andrewpaige1/studycards-api/srs"
)

// StudyBatchSize bounds how many due cards seed one study session.
const StudyBatchSize = 20

func (s *Store) Cards(ctx context.Context, deckPublicID string) ([]models.Flashcard, error) {
	deck, err := s.DeckByPublicID(ctx, deckPublicID)
	if err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	err = s.db.WithContext(ctx).
		Where("deck_id = ?", deck.ID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("fetch cards for deck %s: %w", deckPublicID, err)
	}
	return cards, nil
}

// DueCards returns the deck's cards that are due at the reference instant,
// soonest first, capped at limit. A card due exactly at now is included.
func (s *Store) DueCards(ctx context.Context, deckPublicID string, now time.Time, limit int) ([]models.Flashcard, error) {
	deck, err := s.DeckByPublicID(ctx, deckPublicID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > StudyBatchSize {
		limit = StudyBatchSize
	}

	var cards []models.Flashcard
	err = s.db.WithContext(ctx).
		Where("deck_id = ? AND next_review <= ?", deck.ID, now.UTC()).
		Order("next_review ASC").
		Limit(limit).
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("fetch due cards for deck %s: %w", deckPublicID, err)
	}
	return cards, nil
}

func (s *Store) CreateCard(ctx context.Context, deckPublicID, front, back string) (models.Flashcard, error) {
	deck, err := s.DeckByPublicID(ctx, deckPublicID)
	if err != nil {
		return models.Flashcard{}, err
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("generate card id: %w", err)
	}

	card := models.Flashcard{
		PublicID:   publicID,
		DeckID:     deck.ID,
		Front:      front,
		Back:       back,
		Difficulty: srs.New,
		NextReview: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&card).Error; err != nil {
		return models.Flashcard{}, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

func (s *Store) UpdateCard(ctx context.Context, publicID string, patch models.FlashcardPatch) (models.Flashcard, error) {
	var card models.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("public_id = ?", publicID).First(&card).Error; err != nil {
			return notFound(err, "flashcard %s", publicID)
		}
		if patch.Front != nil {
			card.Front = *patch.Front
		}
		if patch.Back != nil {
			card.Back = *patch.Back
		}
		return tx.Save(&card).Error
	})
	if err != nil {
		return models.Flashcard{}, err
	}
	return card, nil
}

func (s *Store) DeleteCard(ctx context.Context, publicID string) error {
	result := s.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&models.Flashcard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("flashcard %s: %w", publicID, ErrNotFound)
	}
	return nil
}

// ReviewCard records one review outcome. The card's difficulty and review
// count are re-read inside the transaction immediately before the write, so
// two sequential reviews never lose an increment, and the three scheduling
// fields land in a single update. On any failure the card is left untouched.
func (s *Store) ReviewCard(ctx context.Context, publicID string, wasCorrect bool, now time.Time) (models.Flashcard, error) {
	var card models.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("public_id = ?", publicID).First(&card).Error; err != nil {
			return notFound(err, "flashcard %s", publicID)
		}

		update, err := srs.Schedule(card.Difficulty, card.ReviewCount, wasCorrect, now)
		if err != nil {
			return err
		}

		result := tx.Model(&models.Flashcard{}).
			Where("id = ?", card.ID).
			Updates(map[string]any{
				"difficulty":   update.Difficulty,
				"next_review":  update.NextReview.UTC(),
				"review_count": update.ReviewCount,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("flashcard %s: %w", publicID, ErrNotFound)
		}

		card.Difficulty = update.Difficulty
		card.NextReview = update.NextReview.UTC()
		card.ReviewCount = update.ReviewCount
		return nil
	})
	if err != nil {
		return models.Flashcard{}, err
	}
	return card, nil
}

// Review is ReviewCard at the current instant. It satisfies study.Reviewer.
func (s *Store) Review(ctx context.Context, cardPublicID string, wasCorrect bool) (models.Flashcard, error) {
	return s.ReviewCard(ctx, cardPublicID, wasCorrect, time.Now().UTC())
}
