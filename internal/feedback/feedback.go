// Package feedback composes the deterministic, rule-driven improvement
// narrative for an evaluation. Statements are ordered by the weight of the
// criterion they address, so the highest-impact gap appears first. The output
// is a plain ordered list; joining and prettifying belong to the presentation
// layer.
package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-relevance/internal/types"
)

// maxProjectSkillSuggestions caps how many missing must-have skills the
// portfolio recommendation names.
const maxProjectSkillSuggestions = 3

// projectGapThreshold is the project sub-score below which portfolio work is
// recommended.
const projectGapThreshold = 50

// Input carries the per-criterion outcomes the synthesizer reads. Skill
// lists preserve the job's declared order.
type Input struct {
	MissingMustHave    []string
	MissingNiceToHave  []string
	EducationScore     float64
	MinEducation       types.EducationLevel
	CandidateEducation types.EducationLevel
	ExperienceScore    float64
	ShortfallMonths    int
	RequiredMonths     int
	ProjectScore       float64
}

// Synthesize produces the ordered improvement statements for one evaluation.
// An empty result means no gaps were found, not an omitted analysis.
func Synthesize(in Input) []string {
	statements := []string{}

	// Criterion weight order: must-have (0.35), education (0.20),
	// experience (0.20), nice-to-have (0.15), project (0.10).
	for _, skill := range in.MissingMustHave {
		statements = append(statements,
			fmt.Sprintf("Add the must-have skill %q; the role requires it.", skill))
	}

	if in.EducationScore < 100 {
		statements = append(statements, educationStatement(in))
	}

	if in.ExperienceScore < 100 {
		statements = append(statements, experienceStatement(in))
	}

	for _, skill := range in.MissingNiceToHave {
		statements = append(statements,
			fmt.Sprintf("Consider adding the nice-to-have skill %q to strengthen your profile.", skill))
	}

	if in.ProjectScore < projectGapThreshold {
		statements = append(statements, projectStatement(in))
	}

	return statements
}

func educationStatement(in Input) string {
	candidate := in.CandidateEducation
	if candidate == "" {
		candidate = types.EducationNone
	}
	return fmt.Sprintf("Your highest education level (%s) is below the required minimum (%s).",
		candidate, in.MinEducation)
}

func experienceStatement(in Input) string {
	return fmt.Sprintf("Gain %s more experience to meet the requirement of %s.",
		humanMonths(in.ShortfallMonths), humanMonths(in.RequiredMonths))
}

func projectStatement(in Input) string {
	suggest := in.MissingMustHave
	if len(suggest) > maxProjectSkillSuggestions {
		suggest = suggest[:maxProjectSkillSuggestions]
	}
	if len(suggest) == 0 {
		return "Build portfolio projects that demonstrate the role's required skills in practice."
	}
	return fmt.Sprintf("Build portfolio projects demonstrating %s.", strings.Join(suggest, ", "))
}

// humanMonths renders a month count as years and months for readability.
func humanMonths(months int) string {
	if months < 0 {
		months = 0
	}
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return plural(months, "month")
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " and " + plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
