package config

import (
	"fmt"
	"os"
)

// APIKeyEnvVar names the environment variable holding the Gemini API key.
const APIKeyEnvVar = "GEMINI_API_KEY"

// Config holds the settings the fetcher needs at startup.
type Config struct {
	APIKey string
}

// Load reads configuration from the environment. A missing credential is
// returned as an error so callers decide how to terminate.
func Load() (*Config, error) {
	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return nil, fmt.Errorf("%s not found in environment", APIKeyEnvVar)
	}

	return &Config{APIKey: key}, nil
}
