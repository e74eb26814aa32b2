package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/engine"
)

func TestEvaluateBulkCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate-bulk", "--job", "job.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestEvaluateBulkCommand_EndToEnd(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.json")
	candidatesPath := filepath.Join(dir, "candidates.json")
	outPath := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(workedExampleJob), 0o644))
	require.NoError(t, os.WriteFile(candidatesPath, []byte(`[
		{"id": "cand-1", "skills": ["python", "sql", "docker"],
		 "education": [{"degree": "BSc"}], "experience": [{"months": 36}]},
		{"skills": ["python"]},
		{"id": "cand-3", "skills": []}
	]`), 0o644))

	cmd := exec.Command(binaryPath, "evaluate-bulk",
		"--job", jobPath, "--candidates", candidatesPath,
		"--out", outPath, "--workers", "2", "--timeout", "30s")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result engine.BulkResult
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Items, 3)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)

	// Input order survives the parallel run.
	assert.Equal(t, "cand-1", result.Items[0].CandidateID)
	assert.NotNil(t, result.Items[0].Evaluation)
	assert.Nil(t, result.Items[1].Evaluation)
	assert.NotEmpty(t, result.Items[1].Error)
	assert.Equal(t, "cand-3", result.Items[2].CandidateID)
}
