// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-relevance/internal/engine"
	"github.com/jonathan/resume-relevance/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirement outputs a human-readable summary of the job the
// candidates are scored against.
func (p *Printer) PrintJobRequirement(job *types.JobRequirement) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job ID:   %s\n", job.ID))
	if job.Title != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	}
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString("\n")

	if len(job.MustHave) > 0 {
		sb.WriteString("Must-have skills:\n")
		count := min(len(job.MustHave), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.MustHave[i]))
		}
		if len(job.MustHave) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.MustHave)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.NiceToHave) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(job.NiceToHave), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.NiceToHave[i]))
		}
		if len(job.NiceToHave) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.NiceToHave)-3))
		}
		sb.WriteString("\n")
	}

	if job.MinEducation != "" && job.MinEducation != types.EducationNone {
		sb.WriteString(fmt.Sprintf("Minimum education:  %s\n", job.MinEducation))
	}
	if job.MinExperienceMonths > 0 {
		sb.WriteString(fmt.Sprintf("Minimum experience: %d months\n", job.MinExperienceMonths))
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the per-criterion breakdown for one candidate.
func (p *Printer) PrintEvaluation(eval *types.Evaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", eval.CandidateID))
	sb.WriteString(fmt.Sprintf("Verdict:   %s (%.1f)\n", eval.Verdict, eval.FinalScore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Must-have:    %6.1f\n", eval.Scores.MustHave))
	sb.WriteString(fmt.Sprintf("Nice-to-have: %6.1f\n", eval.Scores.NiceToHave))
	sb.WriteString(fmt.Sprintf("Education:    %6.1f\n", eval.Scores.Education))
	sb.WriteString(fmt.Sprintf("Experience:   %6.1f\n", eval.Scores.Experience))
	sb.WriteString(fmt.Sprintf("Projects:     %6.1f\n", eval.Scores.Project))
	if eval.CertificationBonus > 0 {
		sb.WriteString(fmt.Sprintf("Cert bonus:   %+6.1f\n", eval.CertificationBonus))
	}

	if len(eval.MatchedSkills) > 0 {
		sb.WriteString("\n")
		skills := strings.Join(eval.MatchedSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched: %s\n", skills))
	}
	if len(eval.MissingSkills) > 0 {
		skills := strings.Join(eval.MissingSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing: %s\n", skills))
	}

	if len(eval.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		count := min(len(eval.Feedback), maxItemsToShow)
		for i := 0; i < count; i++ {
			line := eval.Feedback[i]
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(eval.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(eval.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulkSummary outputs the outcome counts and verdict distribution of a
// bulk run.
func (p *Printer) PrintBulkSummary(result *engine.BulkResult) {
	if result == nil || len(result.Items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates evaluated: %d\n", len(result.Items)))
	sb.WriteString(fmt.Sprintf("Succeeded: %d   Failed: %d\n", result.Succeeded, result.Failed))

	verdicts := map[types.Verdict]int{}
	for _, item := range result.Items {
		if item.Evaluation != nil {
			verdicts[item.Evaluation.Verdict]++
		}
	}
	if len(verdicts) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("High:   %d\n", verdicts[types.VerdictHigh]))
		sb.WriteString(fmt.Sprintf("Medium: %d\n", verdicts[types.VerdictMedium]))
		sb.WriteString(fmt.Sprintf("Low:    %d\n", verdicts[types.VerdictLow]))
	}

	failed := 0
	for _, item := range result.Items {
		if item.Err == nil {
			continue
		}
		if failed == 0 {
			sb.WriteString("\nFailures:\n")
		}
		failed++
		if failed > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", result.Failed-3))
			break
		}
		msg := item.Error
		if len(msg) > 40 {
			msg = msg[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  ⚠ #%d %s: %s\n", item.Index, item.CandidateID, msg))
	}

	p.printBox("BULK EVALUATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
