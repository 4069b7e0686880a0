package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds CLI configuration. Values come from the environment
// (optionally seeded from a .env file) and are overridden by flags.
type Config struct {
	Chances   int    `env:"HANGMAN_CHANCES" envDefault:"5"`
	WordsFile string `env:"HANGMAN_WORDS_FILE" envDefault:"data/hangman_words.json"`
	Source    string `env:"HANGMAN_SOURCE" envDefault:"file"`
	RedisURL  string `env:"HANGMAN_REDIS_URL" envDefault:"redis://localhost:6379"`
	LogLevel  string `env:"HANGMAN_LOG_LEVEL" envDefault:"warn"`
	Output    string `env:"HANGMAN_OUTPUT" envDefault:"text"`
}

// DefaultConfig returns the configuration from .env and the environment
func DefaultConfig() (*Config, error) {
	return LoadConfig(".env")
}

// LoadConfig loads dotenvPath if it exists, then parses the environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
