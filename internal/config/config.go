package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Quiz sources.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	Env string `yaml:"env"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Server struct {
		Port          string `yaml:"port"`
		SessionSecret string `yaml:"session_secret"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`
	Quiz struct {
		ID     string `yaml:"id"`
		Source string `yaml:"source"`
		TTL    string `yaml:"ttl"`
	} `yaml:"quiz"`
	Game struct {
		AdvanceDelay string `yaml:"advance_delay"`
	} `yaml:"game"`
	Bank struct {
		AccountNumber  string   `yaml:"account_number"`
		AccountType    string   `yaml:"account_type"`
		OpeningBalance string   `yaml:"opening_balance"`
		PINs           []string `yaml:"pins"`
	} `yaml:"bank"`
}

// Load reads YAML config from path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "local"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Server.SessionSecret == "" {
		cfg.Server.SessionSecret = "millionaire-dev-secret"
	}
	if cfg.Quiz.ID == "" {
		cfg.Quiz.ID = "classic"
	}
	if cfg.Quiz.Source == "" {
		switch {
		case cfg.Postgres.URL != "":
			cfg.Quiz.Source = SourcePostgres
		case cfg.SQLite.Path != "":
			cfg.Quiz.Source = SourceSQLite
		default:
			cfg.Quiz.Source = SourceStatic
		}
	}
	if cfg.Game.AdvanceDelay == "" {
		cfg.Game.AdvanceDelay = "1500ms"
	}
}

func (c Config) validate() error {
	switch c.Quiz.Source {
	case SourceStatic:
	case SourcePostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("%w: quiz source postgres needs postgres.url", ErrInvalidConfig)
		}
	case SourceSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("%w: quiz source sqlite needs sqlite.path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown quiz source %q", ErrInvalidConfig, c.Quiz.Source)
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
