package main

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `conf:"default:8080,env:PORT"`
	AIProvider  string `conf:"default:openai,env:AI_PROVIDER"`
	AIAPIKey    string `conf:"env:AI_API_KEY"`
	AIModel     string `conf:"default:gpt-3.5-turbo,env:AI_MODEL"`
	AIBaseURL   string `conf:"env:AI_BASE_URL"`
	SendGridKey string `conf:"env:SENDGRID_API_KEY"`
}

func ReadConfig() (*Config, error) {
	// Local development keys live in .env; missing file is fine.
	_ = godotenv.Load()

	var cfg Config
	help, err := conf.ParseOSArgs("APP", &cfg)

	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
