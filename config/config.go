package config

import (
	"os"
	"strconv"
)

// Config carries process-level settings. Values come from the
// environment (a .env file is honored via godotenv autoload in main).
type Config struct {
	SaveDir     string
	LogLevel    string
	BotStrategy string
	Resume      string
	Seed        int64
	Seeded      bool
}

func Load() Config {
	cfg := Config{
		SaveDir:     getEnv("UNO_SAVE_DIR", "saves"),
		LogLevel:    getEnv("UNO_LOG_LEVEL", "info"),
		BotStrategy: getEnv("UNO_BOT_STRATEGY", "random"),
		Resume:      os.Getenv("UNO_RESUME"),
	}
	if raw := os.Getenv("UNO_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.Seeded = true
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
