package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-relevance/internal/engine"
	"github.com/jonathan/resume-relevance/internal/types"
)

func TestPrintJobRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobRequirement{
		ID:                  "job-1",
		Title:               "Data Engineer",
		Location:            "Remote",
		MustHave:            []string{"python", "sql"},
		NiceToHave:          []string{"docker"},
		MinEducation:        types.EducationBachelor,
		MinExperienceMonths: 24,
	}

	p.PrintJobRequirement(job)
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENT")
	assert.Contains(t, output, "job-1")
	assert.Contains(t, output, "Data Engineer")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "docker")
	assert.Contains(t, output, "bachelor")
	assert.Contains(t, output, "24 months")
}

func TestPrintJobRequirement_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobRequirement_LongSkillListTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobRequirement{
		ID:       "job-1",
		MustHave: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintJobRequirement(job)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	eval := &types.Evaluation{
		JobID:       "job-1",
		CandidateID: "cand-1",
		Scores: types.CriterionScores{
			MustHave:   50,
			NiceToHave: 0,
			Education:  100,
			Experience: 100,
			Project:    0,
		},
		FinalScore:    58,
		Verdict:       types.VerdictLow,
		MatchedSkills: []string{"python"},
		MissingSkills: []string{"sql"},
		Feedback:      []string{`Add the must-have skill "sql"; the role requires it.`},
	}

	p.PrintEvaluation(eval)
	output := buf.String()

	assert.Contains(t, output, "EVALUATION")
	assert.Contains(t, output, "cand-1")
	assert.Contains(t, output, "Low")
	assert.Contains(t, output, "58.0")
	assert.Contains(t, output, "Matched: python")
	assert.Contains(t, output, "Missing: sql")
	assert.Contains(t, output, "Feedback:")
}

func TestPrintEvaluation_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEvaluation_CertBonusShownOnlyWhenEarned(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	eval := &types.Evaluation{CandidateID: "cand-1", Verdict: types.VerdictLow}
	p.PrintEvaluation(eval)
	assert.NotContains(t, buf.String(), "Cert bonus")

	buf.Reset()
	eval.CertificationBonus = 8
	p.PrintEvaluation(eval)
	assert.Contains(t, buf.String(), "Cert bonus")
}

func TestPrintBulkSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &engine.BulkResult{
		Items: []engine.BulkItem{
			{Index: 0, CandidateID: "cand-0", Evaluation: &types.Evaluation{Verdict: types.VerdictHigh}},
			{Index: 1, CandidateID: "cand-1", Evaluation: &types.Evaluation{Verdict: types.VerdictLow}},
			{Index: 2, CandidateID: "cand-2", Err: assert.AnError, Error: assert.AnError.Error()},
		},
		Succeeded: 2,
		Failed:    1,
	}

	p.PrintBulkSummary(result)
	output := buf.String()

	assert.Contains(t, output, "BULK EVALUATION SUMMARY")
	assert.Contains(t, output, "Candidates evaluated: 3")
	assert.Contains(t, output, "Succeeded: 2")
	assert.Contains(t, output, "High:   1")
	assert.Contains(t, output, "Low:    1")
	assert.Contains(t, output, "cand-2")
}

func TestPrintBulkSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBulkSummary(&engine.BulkResult{})
	p.PrintBulkSummary(nil)

	assert.Empty(t, buf.String())
}
