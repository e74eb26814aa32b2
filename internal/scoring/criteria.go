package scoring

import (
	"strings"

	"github.com/jonathan/resume-relevance/internal/skills"
	"github.com/jonathan/resume-relevance/internal/types"
)

// educationPartialCredit is awarded when the candidate's highest degree is
// exactly one level below the job's minimum. Two or more levels below scores 0.
const educationPartialCredit = 50

// SkillScore is the outcome of scoring one requirement list (must-have or
// nice-to-have) against the candidate's skills.
type SkillScore struct {
	Score   float64        // 0-100
	Matched []skills.Match // matched requirements, in the job's declared order
	Missing []string       // unmatched requirements, in the job's declared order
}

// ScoreSkills scores a requirement list as 100 × matched / required. An empty
// requirement list means no requirement and scores 100, not a division error.
func ScoreSkills(m *skills.Matcher, required, candidateSkills []string) SkillScore {
	result := SkillScore{}
	if len(required) == 0 {
		result.Score = 100
		return result
	}
	for _, match := range m.MatchAll(required, candidateSkills) {
		if match.Matched {
			result.Matched = append(result.Matched, match)
		} else {
			result.Missing = append(result.Missing, match.Skill)
		}
	}
	result.Score = 100 * float64(len(result.Matched)) / float64(len(required))
	return result
}

// ScoreEducation compares the candidate's highest degree against the job's
// minimum level. Meeting or exceeding the minimum scores 100, one level below
// earns partial credit, further below scores 0. A job without a minimum
// scores 100.
func ScoreEducation(minimum types.EducationLevel, candidate *types.CandidateProfile) float64 {
	if minimum == "" || minimum == types.EducationNone {
		return 100
	}
	gap := minimum.Rank() - candidate.HighestEducation().Rank()
	switch {
	case gap <= 0:
		return 100
	case gap == 1:
		return educationPartialCredit
	default:
		return 0
	}
}

// ScoreExperience grants full credit when total experience meets the required
// months and linear partial credit below it. A zero requirement scores 100.
func ScoreExperience(requiredMonths int, candidate *types.CandidateProfile) float64 {
	if requiredMonths <= 0 {
		return 100
	}
	total := candidate.TotalExperienceMonths()
	if total >= requiredMonths {
		return 100
	}
	if total <= 0 {
		return 0
	}
	return 100 * float64(total) / float64(requiredMonths)
}

// ScoreProjects measures applied skill use: the fraction of the job's
// combined must-have and nice-to-have skills that appear in any project's
// technology list (matcher semantics) or description (normalized substring).
// No required skills scores 100; required skills but no projects scores 0.
func ScoreProjects(m *skills.Matcher, job *types.JobRequirement, projects []types.ProjectRecord) float64 {
	pool := requiredSkillPool(job)
	if len(pool) == 0 {
		return 100
	}
	if len(projects) == 0 {
		return 0
	}

	evidenced := 0
	for _, skill := range pool {
		if skillAppearsInProjects(m, skill, projects) {
			evidenced++
		}
	}
	return 100 * float64(evidenced) / float64(len(pool))
}

// CertificationBonus awards bonus points per certification whose name or
// issuer aligns with a required or nice-to-have skill, by case-insensitive
// substring or synonym match, up to the configured cap. The bonus is additive
// headroom applied by the aggregator; it never inflates a sub-score.
func (c Config) CertificationBonus(m *skills.Matcher, job *types.JobRequirement, certs []types.CertificationRecord) float64 {
	pool := requiredSkillPool(job)
	if len(pool) == 0 || len(certs) == 0 {
		return 0
	}

	bonus := 0.0
	for _, cert := range certs {
		if certMatchesAnySkill(m, cert, pool) {
			bonus += c.CertBonusPerMatch
		}
	}
	if bonus > c.CertBonusCap {
		bonus = c.CertBonusCap
	}
	return bonus
}

// requiredSkillPool returns the union of must-have and nice-to-have skills,
// deduplicated on normalized form, preserving the job's declared order.
func requiredSkillPool(job *types.JobRequirement) []string {
	seen := make(map[string]bool)
	pool := make([]string, 0, len(job.MustHave)+len(job.NiceToHave))
	for _, skill := range append(append([]string{}, job.MustHave...), job.NiceToHave...) {
		norm := skills.Normalize(skill)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		pool = append(pool, skill)
	}
	return pool
}

func skillAppearsInProjects(m *skills.Matcher, skill string, projects []types.ProjectRecord) bool {
	norm := skills.Normalize(skill)
	for _, project := range projects {
		if m.Match(skill, project.Technologies).Matched {
			return true
		}
		text := skills.Normalize(project.Title + " " + project.Description)
		if strings.Contains(text, norm) {
			return true
		}
	}
	return false
}

func certMatchesAnySkill(m *skills.Matcher, cert types.CertificationRecord, pool []string) bool {
	certText := skills.Normalize(cert.Name + " " + cert.Issuer)
	certTokens := strings.Fields(certText)
	for _, skill := range pool {
		norm := skills.Normalize(skill)
		if norm == "" {
			continue
		}
		if strings.Contains(certText, norm) {
			return true
		}
		// Synonym-aware: an "AWS Certified Developer" cert counts toward a
		// "cloud" requirement because both canonicalize to the same token.
		if m.Match(skill, certTokens).Matched {
			return true
		}
	}
	return false
}
