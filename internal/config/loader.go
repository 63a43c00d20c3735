package config

import "time"

// Loader configures the page state loader driven by the lookup command.
type Loader struct {
	BaseURL  string        `env:"LOADER_BASE_URL" envDefault:"http://localhost:8080"`
	Deadline time.Duration `env:"LOADER_DEADLINE" envDefault:"15s"`
}
