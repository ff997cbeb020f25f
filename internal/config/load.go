package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadCredentials reads the Gemini API keys from the environment, after
// loading any of the given dotenv files that exist. Variables already set in
// the process environment win over dotenv values. A missing key is not an
// error here; callers decide how to surface it.
func LoadCredentials(cfg *Config, envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	var keys []string
	if key := strings.TrimSpace(os.Getenv(cfg.Gemini.APIKeyEnv)); key != "" {
		keys = append(keys, key)
	}
	for _, key := range strings.Split(os.Getenv(cfg.Gemini.APIKeysEnv), ",") {
		key = strings.TrimSpace(key)
		if key == "" || slices.Contains(keys, key) {
			continue
		}
		keys = append(keys, key)
	}

	cfg.Gemini.APIKeys = keys
	return nil
}
