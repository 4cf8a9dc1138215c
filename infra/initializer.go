package infra

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Initialize loads .env into the process environment and configures the
// global logger. Variables already set in the environment win.
func Initialize() *Config {
	envErr := godotenv.Load()

	cfg := LoadConfig()
	SetupLogger(cfg)

	if envErr != nil {
		log.Info().Msg("No .env file found; using environment variables")
	}
	return cfg
}
