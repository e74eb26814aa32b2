package scoring

import "github.com/jonathan/resume-relevance/internal/types"

// Classify maps a final score to its verdict tier. Thresholds are tier-entry
// boundaries, inclusive on the lower bound: with the defaults, exactly 80 is
// High and exactly 60 is Medium.
func (c Config) Classify(finalScore float64) types.Verdict {
	switch {
	case finalScore >= c.HighThreshold:
		return types.VerdictHigh
	case finalScore >= c.MediumThreshold:
		return types.VerdictMedium
	default:
		return types.VerdictLow
	}
}
