package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Port          string
	GeminiAPIKey  string
	GeminiBaseURL string

	ItineraryModel string
	DealsModel     string
	ChatModel      string

	// Timeout applied to every outbound call to the generation
	// collaborator. Without it a hung remote call would spin forever.
	RequestTimeout time.Duration

	BudgetMin float64
	BudgetMax float64

	// SavedDisplay is how long the "saved" confirmation stays up
	// before the planner reverts to ready.
	SavedDisplay time.Duration

	StoreBackend string // "file" or "mongo"
	TripsFile    string
	MongoURI     string
	MongoDB      string
}

// Load reads configuration from the environment, falling back to
// development defaults. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		ItineraryModel: getEnv("ITINERARY_MODEL", "gemini-2.0-flash"),
		DealsModel:     getEnv("DEALS_MODEL", "gemini-2.0-flash"),
		ChatModel:      getEnv("CHAT_MODEL", "gemini-2.0-flash"),
		RequestTimeout: getDuration("GEMINI_TIMEOUT", 60*time.Second),
		BudgetMin:      getFloat("BUDGET_MIN", 500),
		BudgetMax:      getFloat("BUDGET_MAX", 10000),
		SavedDisplay:   getDuration("SAVED_DISPLAY", 2*time.Second),
		StoreBackend:   getEnv("STORE_BACKEND", "file"),
		TripsFile:      getEnv("TRIPS_FILE", "saved_trips.json"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "wayfarer"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
