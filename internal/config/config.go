// apps/go-server/internal/config/config.go
//
// Process configuration read from the environment.
//
// main loads a .env file (godotenv) before calling Load, so values may come
// from either place. Every key has a development default.
//
// Environment variables:
//   PORT=5175                LOG_LEVEL=info
//   DB_PATH=./data/boggle.db WORDLIST_FILE=            (empty → embedded list)
//   DAILY_SALT=local_dev_salt DAILY_ROWS=4 DAILY_COLS=4
//   JWT_SECRET=dev_secret_change_me JWT_EXPIRES_DAYS=14
//   COOKIE_NAME=boggle_token CLIENT_ORIGIN=http://localhost:5173
//   NODE_ENV=production      (secure cookies)

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every tunable the CLI and server read.
type Config struct {
	Port         string
	LogLevel     string
	DBPath       string
	WordlistFile string

	DailySalt string
	DailyRows int
	DailyCols int

	JWTSecret    string
	JWTExpiry    time.Duration
	CookieName   string
	ClientOrigin string
	Production   bool
}

// Load reads the environment.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBPath:       getEnv("DB_PATH", "./data/boggle.db"),
		WordlistFile: os.Getenv("WORDLIST_FILE"),

		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		DailyRows: envInt("DAILY_ROWS", 4),
		DailyCols: envInt("DAILY_COLS", 4),

		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiry:    time.Duration(envInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
		CookieName:   getEnv("COOKIE_NAME", "boggle_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   os.Getenv("NODE_ENV") == "production",
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or malformed.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
