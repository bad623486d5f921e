// Package config loads the application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Insight generator modes.
const (
	InsightsLocal = "local"
	InsightsAI    = "ai"
)

// Config holds application configuration
type Config struct {
	// Env is the logging environment: development, production or test.
	Env string

	// Data
	DataFile string
	Currency string
	SheetID  string

	// Insights
	Insights     string
	Model        string
	GeminiAPIKey string

	// Server
	Addr string

	// Twilio
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	AlertTo           string
}

// Load reads the .env file at paths, ".env" by default, when it exists, then
// builds the configuration from the environment. Variables already set in the
// environment take precedence over the file.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return nil, fmt.Errorf("could not read %s: %w", p, err)
		}
	}

	config := &Config{
		Env: getEnv("PTRACK_ENV", "development"),

		DataFile: getEnv("PTRACK_DATA", "investment_data.csv"),
		Currency: strings.ToUpper(getEnv("PTRACK_CURRENCY", "USD")),
		SheetID:  getEnv("PTRACK_SHEET_ID", ""),

		Insights:     strings.ToLower(getEnv("PTRACK_INSIGHTS", InsightsLocal)),
		Model:        getEnv("PTRACK_MODEL", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),

		Addr: getEnv("PTRACK_ADDR", ":8080"),

		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		AlertTo:           getEnv("PTRACK_ALERT_TO", ""),
	}

	switch config.Insights {
	case InsightsLocal, InsightsAI:
	default:
		return nil, fmt.Errorf("invalid PTRACK_INSIGHTS %q, want %q or %q", config.Insights, InsightsLocal, InsightsAI)
	}
	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
