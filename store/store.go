package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store wraps the database handle with the typed operations the rest of the
// service uses. Handlers never touch gorm directly.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// notFound converts gorm's record-not-found into the store sentinel, keeping
// the entity description for the log line.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
	}
	return err
}
