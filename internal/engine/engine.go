// Package engine ties the skill matcher, criterion scorers, aggregator, and
// feedback synthesizer together for single and bulk evaluations. It is the
// only entry point the rest of the system uses.
package engine

import (
	"time"

	"github.com/jonathan/resume-relevance/internal/feedback"
	"github.com/jonathan/resume-relevance/internal/scoring"
	"github.com/jonathan/resume-relevance/internal/skills"
	"github.com/jonathan/resume-relevance/internal/types"
)

// Engine evaluates candidate profiles against job requirements. It holds no
// mutable state after construction and is safe for concurrent use.
type Engine struct {
	cfg     scoring.Config
	matcher *skills.Matcher
}

// New constructs an engine from the given configuration, validating every
// tunable first. An invalid configuration is a ConfigurationError; it is
// never silently corrected.
func New(cfg scoring.Config) (*Engine, error) {
	return NewWithSynonyms(cfg, nil)
}

// NewWithSynonyms constructs an engine whose synonym table is extended with
// the given alias → canonical entries on top of the built-in table.
func NewWithSynonyms(cfg scoring.Config, synonyms map[string]string) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	matcher := skills.NewMatcher(cfg.FuzzyThreshold)
	if len(synonyms) > 0 {
		matcher = matcher.WithSynonyms(synonyms)
	}
	return &Engine{cfg: cfg, matcher: matcher}, nil
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() scoring.Config {
	return e.cfg
}

// Evaluate scores one candidate against one job and returns the evaluation
// record. It fails with a ValidationError when either input lacks its
// required identifier; empty optional collections degrade to the documented
// default scores instead of failing.
func (e *Engine) Evaluate(job *types.JobRequirement, candidate *types.CandidateProfile) (*types.Evaluation, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	mustHave := scoring.ScoreSkills(e.matcher, job.MustHave, candidate.Skills)
	niceToHave := scoring.ScoreSkills(e.matcher, job.NiceToHave, candidate.Skills)

	scores := types.CriterionScores{
		MustHave:   mustHave.Score,
		NiceToHave: niceToHave.Score,
		Education:  scoring.ScoreEducation(job.MinEducation, candidate),
		Experience: scoring.ScoreExperience(job.MinExperienceMonths, candidate),
		Project:    scoring.ScoreProjects(e.matcher, job, candidate.Projects),
	}
	certBonus := e.cfg.CertificationBonus(e.matcher, job, candidate.Certifications)
	finalScore := e.cfg.FinalScore(scores, certBonus)

	shortfall := job.MinExperienceMonths - candidate.TotalExperienceMonths()
	if shortfall < 0 {
		shortfall = 0
	}

	return &types.Evaluation{
		JobID:              job.ID,
		CandidateID:        candidate.ID,
		Scores:             scores,
		CertificationBonus: certBonus,
		FinalScore:         finalScore,
		Verdict:            e.cfg.Classify(finalScore),
		MatchedSkills:      matchedSkillNames(mustHave, niceToHave),
		MissingSkills:      missingOrEmpty(mustHave.Missing),
		Feedback: feedback.Synthesize(feedback.Input{
			MissingMustHave:    mustHave.Missing,
			MissingNiceToHave:  niceToHave.Missing,
			EducationScore:     scores.Education,
			MinEducation:       job.MinEducation,
			CandidateEducation: candidate.HighestEducation(),
			ExperienceScore:    scores.Experience,
			ShortfallMonths:    shortfall,
			RequiredMonths:     job.MinExperienceMonths,
			ProjectScore:       scores.Project,
		}),
		EvaluatedAt: time.Now().UTC(),
	}, nil
}

// matchedSkillNames builds the ordered, deduplicated union of matched
// must-have and nice-to-have requirement names, preserving the job's
// declared order.
func matchedSkillNames(mustHave, niceToHave scoring.SkillScore) []string {
	seen := make(map[string]bool)
	matched := []string{}
	for _, match := range append(append([]skills.Match{}, mustHave.Matched...), niceToHave.Matched...) {
		norm := skills.Normalize(match.Skill)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		matched = append(matched, match.Skill)
	}
	return matched
}

// missingOrEmpty keeps the JSON field a list rather than null.
func missingOrEmpty(missing []string) []string {
	if missing == nil {
		return []string{}
	}
	return missing
}
