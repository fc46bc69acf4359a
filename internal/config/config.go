package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	DefaultLang  string        `env:"DEFAULT_LANG" envDefault:"en"`
	LangCookie   string        `env:"LANG_COOKIE" envDefault:"PLAY_LANG"`
	ProfilesFile string        `env:"PROFILES_FILE"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from the environment (and an optional .env file)
// and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("config: ADDR invalid (%q): %w", c.Addr, err)
	}

	c.DefaultLang = strings.TrimSpace(c.DefaultLang)
	if c.DefaultLang == "" {
		return fmt.Errorf("config: DEFAULT_LANG is required and cannot be empty")
	}

	if strings.TrimSpace(c.LangCookie) == "" {
		return fmt.Errorf("config: LANG_COOKIE is required and cannot be empty")
	}
	if strings.ContainsAny(c.LangCookie, "=; ") {
		return fmt.Errorf("config: LANG_COOKIE (%q) must be a plain cookie name", c.LangCookie)
	}

	if c.ProfilesFile != "" {
		if _, err := os.Stat(c.ProfilesFile); err != nil {
			return fmt.Errorf("config: PROFILES_FILE: %w", err)
		}
	}

	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("config: READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}

	return nil
}
