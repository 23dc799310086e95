package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wayfarer/internal/chat"
	"github.com/ukydev/wayfarer/internal/config"
	"github.com/ukydev/wayfarer/internal/genai"
	"github.com/ukydev/wayfarer/internal/handlers"
	"github.com/ukydev/wayfarer/internal/maps"
	"github.com/ukydev/wayfarer/internal/planner"
	"github.com/ukydev/wayfarer/internal/store"
)

func buildStore(cfg *config.Config) store.Store {
	if cfg.StoreBackend == "mongo" {
		client, err := store.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to MongoDB")
		}
		log.Info("connected to MongoDB")
		return store.NewMongoStore(client.Database(cfg.MongoDB).Collection("trips"))
	}
	log.WithField("path", cfg.TripsFile).Info("using file-backed trip store")
	return store.NewFileStore(cfg.TripsFile)
}

func main() {
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; generation requests will fail")
	}

	client := genai.NewClient(genai.Options{
		APIKey:         cfg.GeminiAPIKey,
		BaseURL:        cfg.GeminiBaseURL,
		ItineraryModel: cfg.ItineraryModel,
		DealsModel:     cfg.DealsModel,
		ChatModel:      cfg.ChatModel,
		Timeout:        cfg.RequestTimeout,
	})

	trips := buildStore(cfg)
	widget := maps.NewWidget()
	p := planner.New(client, trips, widget, planner.Config{
		BudgetMin:    cfg.BudgetMin,
		BudgetMax:    cfg.BudgetMax,
		SavedDisplay: cfg.SavedDisplay,
	})

	router := handlers.NewRouter(handlers.Deps{
		Planner:   handlers.NewPlannerHandler(p, widget),
		Trips:     handlers.NewTripsHandler(trips),
		Chat:      handlers.NewChatHandler(chat.NewManager(client)),
		Countries: handlers.NewCountriesHandler(client),
	})

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
