package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from MORTY_* environment variables. Command-line flags
// default to these values.
type Config struct {
	DBURL           string        `env:"MORTY_DB_URL"`
	Port            int           `env:"MORTY_PORT"             envDefault:"3000"`
	PublicKey       string        `env:"MORTY_PUBLIC_KEY"`
	UpstreamURL     string        `env:"MORTY_UPSTREAM_URL"     envDefault:"https://rickandmortyapi.com/api"`
	UpstreamTimeout time.Duration `env:"MORTY_UPSTREAM_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"MORTY_REQUEST_TIMEOUT"  envDefault:"15s"`
}

func Load() (cfg Config, err error) {
	err = env.Parse(&cfg)
	if err != nil {
		err = fmt.Errorf("failed to parse environment: %w", err)
	}
	return
}

// LoadFrom parses configuration from the given variables instead of the
// process environment.
func LoadFrom(environment map[string]string) (cfg Config, err error) {
	err = env.ParseWithOptions(&cfg, env.Options{Environment: environment})
	if err != nil {
		err = fmt.Errorf("failed to parse environment: %w", err)
	}
	return
}
