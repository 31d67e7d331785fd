package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv pulls in a local .env file when one exists. Missing files are fine:
// deployed environments set real environment variables instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("No .env file loaded, falling back to environment variables:", err)
	}
}
