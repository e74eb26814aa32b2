package scoring

import (
	"math"

	"github.com/jonathan/resume-relevance/internal/types"
)

// FinalScore combines the five sub-scores through the criterion weights, adds
// the certification bonus, rounds half-up to the configured precision, and
// clamps the result to [0, 100].
func (c Config) FinalScore(s types.CriterionScores, certBonus float64) float64 {
	weighted := c.Weights.MustHave*s.MustHave +
		c.Weights.Education*s.Education +
		c.Weights.Experience*s.Experience +
		c.Weights.NiceToHave*s.NiceToHave +
		c.Weights.Project*s.Project

	total := c.round(weighted + certBonus)
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// round applies round-half-up at whole-point precision, or one-decimal
// precision when configured.
func (c Config) round(x float64) float64 {
	if c.OneDecimal {
		return math.Floor(x*10+0.5) / 10
	}
	return math.Floor(x + 0.5)
}
