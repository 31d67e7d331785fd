package config

import "os"

const (
	// Local development default for the Propalyst backend.
	DefaultAPIBaseURL = "http://localhost:8000"
	defaultPort       = "3000"
)

// Settings holds everything the frontend reads from the environment.
type Settings struct {
	// APIBaseURL is the Propalyst backend base URL (PROPALYST_API_URL).
	APIBaseURL string
	// Port the BFF listens on (PORT).
	Port string
	// MeasurementID enables analytics when set (GA_MEASUREMENT_ID).
	MeasurementID string
}

// LoadSettings reads configuration from environment variables, applying
// defaults for anything unset. Call LoadEnv first so .env values are visible.
func LoadSettings() Settings {
	return Settings{
		APIBaseURL:    envOrDefault("PROPALYST_API_URL", DefaultAPIBaseURL),
		Port:          envOrDefault("PORT", defaultPort),
		MeasurementID: os.Getenv("GA_MEASUREMENT_ID"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
