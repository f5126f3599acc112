package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/andrewpaige1/studycards-api/config"
	"github.com/andrewpaige1/studycards-api/events"
	"github.com/andrewpaige1/studycards-api/handlers"
	"github.com/andrewpaige1/studycards-api/middleware"
	"github.com/andrewpaige1/studycards-api/store"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	bus := events.NewBus()
	handler := &handlers.Handler{Store: store.New(config.Database), Bus: bus}

	// Log every change event so writes are traceable without a subscriber.
	go func() {
		changes, _ := bus.Subscribe()
		for event := range changes {
			log.Printf("changed: %s %s %s", event.Entity, event.Op, event.PublicID)
		}
	}()

	mux := http.NewServeMux()

	// Decks
	mux.HandleFunc("GET /api/decks", handler.GetDecks)
	mux.HandleFunc("POST /api/decks", handler.CreateDeck)
	mux.HandleFunc("GET /api/decks/{deckID}", handler.GetDeckByID)
	mux.HandleFunc("PUT /api/decks/{deckID}", handler.UpdateDeckByID)
	mux.HandleFunc("DELETE /api/decks/{deckID}", handler.DeleteDeckByID)

	// Flashcards
	mux.HandleFunc("GET /api/decks/{deckID}/flashcards", handler.GetFlashcardsForDeck)
	mux.HandleFunc("POST /api/decks/{deckID}/flashcards", handler.CreateFlashcard)
	mux.HandleFunc("PUT /api/decks/{deckID}/flashcards/{flashcardID}", handler.UpdateFlashcardByID)
	mux.HandleFunc("DELETE /api/decks/{deckID}/flashcards/{flashcardID}", handler.DeleteFlashcardByID)
	mux.HandleFunc("POST /api/flashcards/{flashcardID}/review", handler.ReviewFlashcard)

	// Study
	mux.HandleFunc("GET /api/decks/{deckID}/study", handler.GetStudyCards)
	mux.HandleFunc("POST /api/decks/{deckID}/sessions", handler.CreateSession)
	mux.HandleFunc("GET /api/sessions/{sessionID}", handler.GetSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/flip", handler.FlipSessionCard)
	mux.HandleFunc("POST /api/sessions/{sessionID}/answer", handler.AnswerSessionCard)

	// Change feed
	mux.HandleFunc("GET /api/events", handler.StreamEvents)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(mux))

	// Server configuration

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	http.ListenAndServe(serverAddr, corsHandler)
}
