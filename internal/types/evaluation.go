package types

import "time"

// Verdict is the ordinal suitability tier derived from the final score.
type Verdict string

// Verdict tiers.
const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// CriterionScores holds the five 0-100 sub-scores produced by the criterion
// scorers.
type CriterionScores struct {
	MustHave   float64 `json:"must_have"`
	NiceToHave float64 `json:"nice_to_have"`
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Project    float64 `json:"project"`
}

// Evaluation is the engine's output record for one (job, candidate) pair.
// It is constructed once per request and never mutated afterwards. All numeric
// fields are a pure function of the two inputs; only EvaluatedAt varies
// between runs on identical inputs.
type Evaluation struct {
	JobID              string          `json:"job_id"`
	CandidateID        string          `json:"candidate_id"`
	Scores             CriterionScores `json:"scores"`
	CertificationBonus float64         `json:"certification_bonus"`
	FinalScore         float64         `json:"final_score"`
	Verdict            Verdict         `json:"verdict"`
	MatchedSkills      []string        `json:"matched_skills"`
	MissingSkills      []string        `json:"missing_skills"`
	Feedback           []string        `json:"feedback"`
	EvaluatedAt        time.Time       `json:"evaluated_at"`
}
