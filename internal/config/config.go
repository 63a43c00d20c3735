package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       App
	Log       Log
	HTTP      HTTP
	CRM       CRM
	Analytics Analytics
	Loader    Loader
	Redis     Redis
	Postgres  Postgres
	Bot       Bot
}

type App struct {
	Name                 string `env:"APP_NAME" envDefault:"offer-landing"`
	ProbeListenAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Analytics.validate(); err != nil {
		return Config{}, fmt.Errorf("analytics: %w", err)
	}

	if err := config.Bot.validate(); err != nil {
		return Config{}, fmt.Errorf("bot: %w", err)
	}

	return config, nil
}
