package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/types"
)

func bulkCandidates(n int) []*types.CandidateProfile {
	candidates := make([]*types.CandidateProfile, n)
	for i := range candidates {
		candidates[i] = &types.CandidateProfile{
			ID:     fmt.Sprintf("cand-%d", i),
			Skills: []string{"python"},
		}
	}
	return candidates
}

func TestEvaluateBulk_OneSlotPerCandidateInInputOrder(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.EvaluateBulk(context.Background(), workedExampleJob(), bulkCandidates(25), 4)
	require.NoError(t, err)
	require.Len(t, result.Items, 25)

	for i, item := range result.Items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, fmt.Sprintf("cand-%d", i), item.CandidateID)
		require.NotNil(t, item.Evaluation, "slot %d should hold an evaluation", i)
		assert.Equal(t, fmt.Sprintf("cand-%d", i), item.Evaluation.CandidateID)
	}
	assert.Equal(t, 25, result.Succeeded)
	assert.Zero(t, result.Failed)
}

func TestEvaluateBulk_MalformedCandidateIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	candidates := bulkCandidates(5)
	candidates[2] = &types.CandidateProfile{Skills: []string{"python"}} // no ID

	result, err := e.EvaluateBulk(context.Background(), workedExampleJob(), candidates, 2)
	require.NoError(t, err)
	require.Len(t, result.Items, 5)

	assert.Equal(t, 4, result.Succeeded)
	assert.Equal(t, 1, result.Failed)

	bad := result.Items[2]
	assert.Nil(t, bad.Evaluation)
	require.Error(t, bad.Err)
	var evalErr *types.EvaluationError
	require.ErrorAs(t, bad.Err, &evalErr)
	var valErr *types.ValidationError
	assert.ErrorAs(t, bad.Err, &valErr)
	assert.NotEmpty(t, bad.Error)

	for i, item := range result.Items {
		if i == 2 {
			continue
		}
		assert.NotNil(t, item.Evaluation, "healthy slot %d must be unaffected", i)
	}
}

func TestEvaluateBulk_NilCandidateIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	candidates := bulkCandidates(3)
	candidates[1] = nil

	result, err := e.EvaluateBulk(context.Background(), workedExampleJob(), candidates, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Error(t, result.Items[1].Err)
}

func TestEvaluateBulk_InvalidJobFailsWholeCall(t *testing.T) {
	e := newTestEngine(t)
	job := workedExampleJob()
	job.ID = ""

	_, err := e.EvaluateBulk(context.Background(), job, bulkCandidates(3), 2)
	var valErr *types.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestEvaluateBulk_EmptyCandidateList(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.EvaluateBulk(context.Background(), workedExampleJob(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Succeeded)
	assert.Zero(t, result.Failed)
}

func TestEvaluateBulk_CanceledContextMarksItemsFailed(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := e.EvaluateBulk(ctx, workedExampleJob(), bulkCandidates(10), 2)
	require.NoError(t, err)
	require.Len(t, result.Items, 10)
	assert.Equal(t, 10, result.Failed)
	for _, item := range result.Items {
		var evalErr *types.EvaluationError
		require.ErrorAs(t, item.Err, &evalErr)
		assert.ErrorIs(t, item.Err, context.Canceled)
	}
}

func TestEvaluateBulk_DefaultWorkerCount(t *testing.T) {
	e := newTestEngine(t)

	// workers <= 0 falls back to the default pool size.
	result, err := e.EvaluateBulk(context.Background(), workedExampleJob(), bulkCandidates(3), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Succeeded)
}

func TestEvaluateBulk_ResultsMatchSingleEvaluation(t *testing.T) {
	e := newTestEngine(t)
	candidates := bulkCandidates(4)

	result, err := e.EvaluateBulk(context.Background(), workedExampleJob(), candidates, 4)
	require.NoError(t, err)

	for i, item := range result.Items {
		single, err := e.Evaluate(workedExampleJob(), candidates[i])
		require.NoError(t, err)
		single.EvaluatedAt = item.Evaluation.EvaluatedAt
		assert.Equal(t, single, item.Evaluation)
	}
}
