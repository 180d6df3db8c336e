package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Fallback delays keep the generating state perceptible without looking frozen.
const (
	minFallbackDelay = time.Second
	maxFallbackDelay = 3 * time.Second
)

// Config is the full process configuration.
type Config struct {
	HTTP      HTTPConfig
	Provider  ProviderConfig
	Generator GeneratorConfig
	Database  DatabaseConfig
	Broker    BrokerConfig
}

type HTTPConfig struct {
	Addr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
}

// ProviderConfig describes the generative-text provider credential and model.
type ProviderConfig struct {
	APIKey       string        `env:"GEMINI_API_KEY"`
	LegacyAPIKey string        `env:"API_KEY"`
	Model        string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Temperature  float32       `env:"GEMINI_TEMPERATURE" envDefault:"0.7"`
	Timeout      time.Duration `env:"GEMINI_TIMEOUT" envDefault:"10s"`
}

type GeneratorConfig struct {
	FallbackDelay        time.Duration `env:"GENERATOR_FALLBACK_DELAY" envDefault:"2s"`
	FailureFallbackDelay time.Duration `env:"GENERATOR_FAILURE_FALLBACK_DELAY" envDefault:"1s"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

type BrokerConfig struct {
	AMQPURL    string `env:"AMQP_URL"`
	EventQueue string `env:"AMQP_EVENT_QUEUE" envDefault:"generation_events"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"GENERATOR_FALLBACK_DELAY":         c.Generator.FallbackDelay,
		"GENERATOR_FAILURE_FALLBACK_DELAY": c.Generator.FailureFallbackDelay,
	} {
		if d < minFallbackDelay || d >= maxFallbackDelay {
			return fmt.Errorf("%s must be in [%s, %s), got %s", name, minFallbackDelay, maxFallbackDelay, d)
		}
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive, got %s", c.Provider.Timeout)
	}
	return nil
}

// Key returns the effective credential, preferring GEMINI_API_KEY.
func (p ProviderConfig) Key() string {
	if strings.TrimSpace(p.APIKey) != "" {
		return strings.TrimSpace(p.APIKey)
	}
	return strings.TrimSpace(p.LegacyAPIKey)
}

// IsConfigured reports whether the credential is usable. Empty values and
// obvious placeholders count as not configured.
func (p ProviderConfig) IsConfigured() bool {
	key := p.Key()
	if key == "" || key == "undefined" || key == "null" {
		return false
	}
	return !strings.Contains(strings.ToUpper(key), "YOUR_API_KEY")
}

func (d DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.URL) != ""
}

func (b BrokerConfig) Enabled() bool {
	return strings.TrimSpace(b.AMQPURL) != ""
}
