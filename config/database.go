package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrewpaige1/studycards-api/models"
)

var Database *gorm.DB

// Connect opens the database and migrates the schema. Postgres when DB_URL is
// set; otherwise a local sqlite file so development needs no running server.
func Connect() error {
	var err error
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "studycards.db"
		}
		log.Printf("DB_URL not set, using sqlite at %s", path)
		Database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(&models.Deck{}, &models.Flashcard{})
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
