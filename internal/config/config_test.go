package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/scoring"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"weights": {"must_have": 0.4, "nice_to_have": 0.15},
		"fuzzy_threshold": 0.8,
		"cert_bonus_per_match": 5,
		"cert_bonus_cap": 15,
		"high_threshold": 85,
		"medium_threshold": 65,
		"one_decimal": true,
		"synonyms": {"rds": "postgresql"},
		"workers": 8,
		"verbose": true,
		"database_url": "postgres://localhost/relevance"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.4, *cfg.Weights.MustHave)
	assert.Equal(t, 0.15, *cfg.Weights.NiceToHave)
	assert.Nil(t, cfg.Weights.Education)
	assert.Equal(t, 0.8, *cfg.FuzzyThreshold)
	assert.Equal(t, 5.0, *cfg.CertBonusPerMatch)
	assert.Equal(t, 15.0, *cfg.CertBonusCap)
	assert.Equal(t, 85.0, *cfg.HighThreshold)
	assert.Equal(t, 65.0, *cfg.MediumThreshold)
	assert.True(t, cfg.OneDecimal)
	assert.Equal(t, map[string]string{"rds": "postgresql"}, cfg.Synonyms)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "postgres://localhost/relevance", cfg.DatabaseURL)
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_FuzzyThresholdOutOfRange(t *testing.T) {
	bad := 1.5
	cfg := &Config{FuzzyThreshold: &bad}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeCertBonus(t *testing.T) {
	bad := -1.0
	cfg := &Config{CertBonusPerMatch: &bad}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestEngineConfig_EmptyFileYieldsDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, scoring.DefaultConfig(), cfg.EngineConfig())
}

func TestEngineConfig_PartialWeightOverride(t *testing.T) {
	mustHave := 0.40
	niceToHave := 0.15
	cfg := &Config{Weights: &WeightsConfig{MustHave: &mustHave, NiceToHave: &niceToHave}}

	merged := cfg.EngineConfig()
	assert.Equal(t, 0.40, merged.Weights.MustHave)
	assert.Equal(t, 0.15, merged.Weights.NiceToHave)
	// Untouched weights keep their defaults.
	assert.Equal(t, scoring.DefaultConfig().Weights.Education, merged.Weights.Education)
	assert.NoError(t, merged.Validate())
}

func TestEngineConfig_ThresholdOverrides(t *testing.T) {
	high := 85.0
	medium := 65.0
	threshold := 0.8
	cfg := &Config{HighThreshold: &high, MediumThreshold: &medium, FuzzyThreshold: &threshold, OneDecimal: true}

	merged := cfg.EngineConfig()
	assert.Equal(t, 85.0, merged.HighThreshold)
	assert.Equal(t, 65.0, merged.MediumThreshold)
	assert.Equal(t, 0.8, merged.FuzzyThreshold)
	assert.True(t, merged.OneDecimal)
}

func TestEngineConfig_ZeroOverridesAreHonored(t *testing.T) {
	// A pointer to zero is an explicit override, not an unset field.
	zero := 0.0
	cfg := &Config{CertBonusPerMatch: &zero}
	assert.Equal(t, 0.0, cfg.EngineConfig().CertBonusPerMatch)
}
