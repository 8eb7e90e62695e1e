package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string `env:"PPCALC_DB_PATH" envDefault:"ppcalc.db"`
	LogLevel string `env:"PPCALC_LOG_LEVEL" envDefault:"info"`

	APIURL           string `env:"OSU_API_URL" envDefault:"https://osu.ppy.sh"`
	ClientID         int    `env:"OSU_CLIENT_ID"`
	ClientSecret     string `env:"OSU_CLIENT_SECRET"`
	APIRatePerMinute int    `env:"OSU_API_RATE_PER_MINUTE" envDefault:"60"`
	APIMaxConcurrent int    `env:"OSU_API_MAX_CONCURRENT" envDefault:"2"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
