package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultLives is the number of wrong guesses allowed per round.
const DefaultLives = 7

// Settings are runtime options read from the environment.
// Command line flags take precedence over them.
type Settings struct {
	LogLevel string `env:"HANGMAN_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	LogFile  string `env:"HANGMAN_LOG_FILE" env-description:"write logs to this file instead of stderr"`
	Lives    int    `env:"HANGMAN_LIVES" env-default:"7" env-description:"wrong guesses allowed per round"`
	Seed     int64  `env:"HANGMAN_SEED" env-default:"0" env-description:"RNG seed, 0 = random based on time"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if s.Lives <= 0 || s.Lives > 255 {
		return Settings{}, fmt.Errorf("HANGMAN_LIVES must be between 1 and 255, got %d", s.Lives)
	}
	return s, nil
}

// SettingsUsage describes the environment variables understood by LoadSettings.
func SettingsUsage() string {
	var s Settings
	usage, err := cleanenv.GetDescription(&s, nil)
	if err != nil {
		return ""
	}
	return usage
}
