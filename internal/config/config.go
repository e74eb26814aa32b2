// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-relevance/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to the engine defaults or
// to CLI flags.
type Config struct {
	// Scoring tunables
	Weights           *WeightsConfig `json:"weights,omitempty"`             // Criterion weight overrides
	FuzzyThreshold    *float64       `json:"fuzzy_threshold,omitempty"`     // Minimum similarity for a fuzzy skill match (0.0-1.0)
	CertBonusPerMatch *float64       `json:"cert_bonus_per_match,omitempty"` // Bonus points per relevant certification
	CertBonusCap      *float64       `json:"cert_bonus_cap,omitempty"`       // Ceiling on the total certification bonus
	HighThreshold     *float64       `json:"high_threshold,omitempty"`       // Inclusive lower bound of the High verdict band
	MediumThreshold   *float64       `json:"medium_threshold,omitempty"`     // Inclusive lower bound of the Medium verdict band
	OneDecimal        bool           `json:"one_decimal,omitempty"`          // Round final scores to one decimal instead of integers

	// Skill matching
	Synonyms map[string]string `json:"synonyms,omitempty"` // Extra alias -> canonical skill entries

	// Bulk evaluation
	Workers int `json:"workers,omitempty"` // Worker pool size for bulk evaluation

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed per-criterion output
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for persisting evaluations
}

// WeightsConfig mirrors scoring.Weights with optional fields so a config file
// can override a subset of the criterion weights.
type WeightsConfig struct {
	MustHave   *float64 `json:"must_have,omitempty"`
	NiceToHave *float64 `json:"nice_to_have,omitempty"`
	Education  *float64 `json:"education,omitempty"`
	Experience *float64 `json:"experience,omitempty"`
	Project    *float64 `json:"project,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks ranges that can be judged without the engine defaults.
// The merged scoring config is validated again by scoring.Config.Validate,
// which catches cross-field problems such as weights not summing to 1.0.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.FuzzyThreshold != nil && (*c.FuzzyThreshold < 0 || *c.FuzzyThreshold > 1) {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be within [0, 1]")
	}
	if c.CertBonusPerMatch != nil && *c.CertBonusPerMatch < 0 {
		return fmt.Errorf("config error: 'cert_bonus_per_match' must be non-negative")
	}
	if c.CertBonusCap != nil && *c.CertBonusCap < 0 {
		return fmt.Errorf("config error: 'cert_bonus_cap' must be non-negative")
	}
	return nil
}

// EngineConfig overlays the file values onto the engine defaults and returns
// the resulting scoring configuration.
func (c *Config) EngineConfig() scoring.Config {
	cfg := scoring.DefaultConfig()

	if c.Weights != nil {
		if c.Weights.MustHave != nil {
			cfg.Weights.MustHave = *c.Weights.MustHave
		}
		if c.Weights.NiceToHave != nil {
			cfg.Weights.NiceToHave = *c.Weights.NiceToHave
		}
		if c.Weights.Education != nil {
			cfg.Weights.Education = *c.Weights.Education
		}
		if c.Weights.Experience != nil {
			cfg.Weights.Experience = *c.Weights.Experience
		}
		if c.Weights.Project != nil {
			cfg.Weights.Project = *c.Weights.Project
		}
	}
	if c.FuzzyThreshold != nil {
		cfg.FuzzyThreshold = *c.FuzzyThreshold
	}
	if c.CertBonusPerMatch != nil {
		cfg.CertBonusPerMatch = *c.CertBonusPerMatch
	}
	if c.CertBonusCap != nil {
		cfg.CertBonusCap = *c.CertBonusCap
	}
	if c.HighThreshold != nil {
		cfg.HighThreshold = *c.HighThreshold
	}
	if c.MediumThreshold != nil {
		cfg.MediumThreshold = *c.MediumThreshold
	}
	cfg.OneDecimal = c.OneDecimal

	return cfg
}
