package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-relevance/internal/types"
)

// defaultBulkWorkers bounds the parallel fan-out when the caller does not
// specify a worker count.
const defaultBulkWorkers = 10

// BulkItem is one slot of a bulk evaluation result. Exactly one of
// Evaluation and Err is set.
type BulkItem struct {
	Index       int               `json:"index"`
	CandidateID string            `json:"candidate_id"`
	Evaluation  *types.Evaluation `json:"evaluation,omitempty"`
	Err         error             `json:"-"`
	Error       string            `json:"error,omitempty"`
}

// BulkResult holds one item per input candidate, in input order, plus
// success and failure counts for reporting.
type BulkResult struct {
	Items     []BulkItem `json:"items"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
}

// EvaluateBulk evaluates every candidate against the job in parallel. Items
// are independent: each runs on its own worker with the read-only job shared
// across all of them, and results are reassembled by index so output order
// always matches input order regardless of completion order.
//
// A failure on one candidate is captured in its slot as an EvaluationError
// and never aborts the batch. When the context is canceled (for example by a
// bulk-level timeout), items that have not started are marked failed with the
// context error while already-completed items are preserved. A job record
// without its required identifier fails the whole call up front, since no
// item could succeed.
func (e *Engine) EvaluateBulk(ctx context.Context, job *types.JobRequirement, candidates []*types.CandidateProfile, workers int) (*BulkResult, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	result := &BulkResult{Items: make([]BulkItem, len(candidates))}
	if len(candidates) == 0 {
		return result, nil
	}

	if workers <= 0 {
		workers = defaultBulkWorkers
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			result.Items[i] = e.evaluateItem(ctx, i, job, candidate)
			return nil
		})
	}
	// Item errors are captured per slot, never returned by the group.
	_ = g.Wait()

	for i := range result.Items {
		if result.Items[i].Err != nil {
			result.Items[i].Error = result.Items[i].Err.Error()
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	return result, nil
}

// evaluateItem runs a single bulk slot, converting panics and context
// cancellation into per-item EvaluationErrors.
func (e *Engine) evaluateItem(ctx context.Context, index int, job *types.JobRequirement, candidate *types.CandidateProfile) (item BulkItem) {
	item = BulkItem{Index: index}
	if candidate != nil {
		item.CandidateID = candidate.ID
	}

	defer func() {
		if r := recover(); r != nil {
			item.Evaluation = nil
			item.Err = &types.EvaluationError{
				CandidateID: item.CandidateID,
				Cause:       fmt.Errorf("panic: %v", r),
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		item.Err = &types.EvaluationError{CandidateID: item.CandidateID, Cause: err}
		return item
	}
	if candidate == nil {
		item.Err = &types.EvaluationError{
			CandidateID: "",
			Cause:       &types.ValidationError{Record: "candidate", Message: "nil profile"},
		}
		return item
	}

	evaluation, err := e.Evaluate(job, candidate)
	if err != nil {
		item.Err = &types.EvaluationError{CandidateID: candidate.ID, Cause: err}
		return item
	}
	item.Evaluation = evaluation
	return item
}
