// Package config reads analysis defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/Swissguarde/dimex-sdc/internal/analysis"
	"github.com/Swissguarde/dimex-sdc/internal/slope"
)

// Config holds the defaults the CLI flags start from.
type Config struct {
	ReleaseScheme     string  `env:"SDC_RELEASE_SCHEME" envDefault:"zero-moment"`
	SingularTolerance float64 `env:"SDC_SINGULAR_TOLERANCE" envDefault:"1e-9"`
	ResidualTolerance float64 `env:"SDC_RESIDUAL_TOLERANCE" envDefault:"1e-6"`
	DiagramSamples    int     `env:"SDC_DIAGRAM_SAMPLES" envDefault:"40"`
	Locale            string  `env:"SDC_LOCALE" envDefault:"en"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Options(); err != nil {
		return Config{}, err
	}
	if cfg.DiagramSamples < 1 {
		return Config{}, fmt.Errorf("SDC_DIAGRAM_SAMPLES must be positive, got %d", cfg.DiagramSamples)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return Config{}, fmt.Errorf("SDC_LOCALE: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into analysis options.
func (c Config) Options() (analysis.Options, error) {
	scheme, err := slope.ParseScheme(c.ReleaseScheme)
	if err != nil {
		return analysis.Options{}, fmt.Errorf("SDC_RELEASE_SCHEME: %w", err)
	}
	if c.SingularTolerance <= 0 || c.ResidualTolerance <= 0 {
		return analysis.Options{}, fmt.Errorf("tolerances must be positive")
	}
	return analysis.Options{
		Scheme:            scheme,
		SingularTolerance: c.SingularTolerance,
		ResidualTolerance: c.ResidualTolerance,
	}, nil
}

// Language returns the configured locale tag, English when it does not parse.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
