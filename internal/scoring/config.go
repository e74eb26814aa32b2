// Package scoring turns matcher results and profile facts into criterion
// sub-scores, a weighted final score, and a verdict tier.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-relevance/internal/types"
)

// weightSumTolerance absorbs float representation error when checking that
// the five criterion weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights holds the relative weight of each scoring criterion. The five
// weights must sum to 1.0; the certification bonus is additive headroom on
// top, not a sixth weighted term.
type Weights struct {
	MustHave   float64 `json:"must_have"`
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	NiceToHave float64 `json:"nice_to_have"`
	Project    float64 `json:"project"`
}

// Config is the engine's complete tuning surface. It is immutable once an
// engine is constructed, so engines with different tuning can coexist in one
// process.
type Config struct {
	Weights Weights `json:"weights"`

	// FuzzyThreshold is the minimum normalized edit-distance similarity for
	// an approximate skill match, in [0, 1].
	FuzzyThreshold float64 `json:"fuzzy_threshold"`

	// CertBonusPerMatch is added to the weighted sum for each certification
	// aligned with a required or nice-to-have skill; CertBonusCap limits the
	// total.
	CertBonusPerMatch float64 `json:"cert_bonus_per_match"`
	CertBonusCap      float64 `json:"cert_bonus_cap"`

	// HighThreshold and MediumThreshold are the tier-entry scores for the
	// High and Medium verdicts. Both bounds are inclusive.
	HighThreshold   float64 `json:"high_threshold"`
	MediumThreshold float64 `json:"medium_threshold"`

	// OneDecimal switches final-score rounding from whole percentage points
	// to one-decimal precision. It must be constant within a deployment.
	OneDecimal bool `json:"one_decimal,omitempty"`
}

// DefaultConfig returns the documented default tuning: weights
// 0.35/0.20/0.20/0.15/0.10, fuzzy threshold 0.70, certification bonus +4 per
// match capped at +20, and verdict boundaries 80/60.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			MustHave:   0.35,
			Education:  0.20,
			Experience: 0.20,
			NiceToHave: 0.15,
			Project:    0.10,
		},
		FuzzyThreshold:    0.70,
		CertBonusPerMatch: 4,
		CertBonusCap:      20,
		HighThreshold:     80,
		MediumThreshold:   60,
	}
}

// Validate checks every tunable against its valid range. Violations are
// ConfigurationErrors and abort engine construction; they are never silently
// corrected.
func (c Config) Validate() error {
	w := c.Weights
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"weights.must_have", w.MustHave},
		{"weights.education", w.Education},
		{"weights.experience", w.Experience},
		{"weights.nice_to_have", w.NiceToHave},
		{"weights.project", w.Project},
	} {
		if entry.value < 0 || entry.value > 1 {
			return &types.ConfigurationError{
				Setting: entry.name,
				Message: fmt.Sprintf("must be in [0, 1], got %v", entry.value),
			}
		}
	}

	sum := w.MustHave + w.Education + w.Experience + w.NiceToHave + w.Project
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &types.ConfigurationError{
			Setting: "weights",
			Message: fmt.Sprintf("must sum to 1.0, got %v", sum),
		}
	}

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return &types.ConfigurationError{
			Setting: "fuzzy_threshold",
			Message: fmt.Sprintf("must be in [0, 1], got %v", c.FuzzyThreshold),
		}
	}
	if c.CertBonusPerMatch < 0 {
		return &types.ConfigurationError{
			Setting: "cert_bonus_per_match",
			Message: fmt.Sprintf("must be non-negative, got %v", c.CertBonusPerMatch),
		}
	}
	if c.CertBonusCap < 0 || c.CertBonusCap > 100 {
		return &types.ConfigurationError{
			Setting: "cert_bonus_cap",
			Message: fmt.Sprintf("must be in [0, 100], got %v", c.CertBonusCap),
		}
	}
	if c.MediumThreshold < 0 || c.HighThreshold > 100 || c.MediumThreshold >= c.HighThreshold {
		return &types.ConfigurationError{
			Setting: "verdict thresholds",
			Message: fmt.Sprintf("need 0 <= medium < high <= 100, got medium=%v high=%v",
				c.MediumThreshold, c.HighThreshold),
		}
	}
	return nil
}
