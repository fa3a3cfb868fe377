package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads an environment variable, loading .env the first time.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

// ConfigOr reads an environment variable with a fallback value.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// DatabaseConfigured reports whether the external store credentials are set.
// When they are not, the server still boots with a disconnected store so
// public pages keep rendering with fallback content.
func DatabaseConfigured() bool {
	return Config("DB_HOST") != "" && Config("DB_USER") != "" && Config("DB_NAME") != ""
}
