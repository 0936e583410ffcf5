// internal/config/config.go

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	Address        string `env:"ADDRESS" envDefault:":8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	SwaggerEnabled bool   `env:"SWAGGER_ENABLED" envDefault:"true"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("error while parsing config: %w", err)
	}

	return config, nil
}
