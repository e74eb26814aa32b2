package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/db"
	"github.com/jonathan/resume-relevance/internal/observability"
)

var evaluateBulkCmd = &cobra.Command{
	Use:   "evaluate-bulk",
	Short: "Score many candidates against one job",
	Long:  "Evaluate a JSON array of candidate profiles against a job requirement in parallel. Results keep the input order; per-candidate failures do not abort the run.",
	RunE:  runEvaluateBulk,
}

var (
	bulkJobFile        string
	bulkCandidatesFile string
	bulkOutputFile     string
	bulkConfigFile     string
	bulkDatabaseURL    string
	bulkWorkers        int
	bulkTimeout        time.Duration
	bulkVerbose        bool
)

func init() {
	evaluateBulkCmd.Flags().StringVarP(&bulkJobFile, "job", "j", "", "Path to job requirement JSON file (required)")
	evaluateBulkCmd.Flags().StringVarP(&bulkCandidatesFile, "candidates", "c", "", "Path to JSON file with an array of candidate profiles (required)")
	evaluateBulkCmd.Flags().StringVarP(&bulkOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	evaluateBulkCmd.Flags().StringVar(&bulkConfigFile, "config", "", "Path to config JSON file with scoring overrides")
	evaluateBulkCmd.Flags().StringVar(&bulkDatabaseURL, "database-url", "", "PostgreSQL URL for persisting evaluations (overrides DATABASE_URL env var)")
	evaluateBulkCmd.Flags().IntVarP(&bulkWorkers, "workers", "w", 0, "Worker pool size (default: engine default)")
	evaluateBulkCmd.Flags().DurationVar(&bulkTimeout, "timeout", 0, "Overall deadline for the bulk run (e.g. 30s; default: none)")
	evaluateBulkCmd.Flags().BoolVarP(&bulkVerbose, "verbose", "v", false, "Print a run summary to stderr")

	_ = evaluateBulkCmd.MarkFlagRequired("job")
	_ = evaluateBulkCmd.MarkFlagRequired("candidates")

	rootCmd.AddCommand(evaluateBulkCmd)
}

func runEvaluateBulk(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(bulkConfigFile)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	job, err := loadJobRequirement(bulkJobFile)
	if err != nil {
		return err
	}
	candidates, err := loadCandidateProfiles(bulkCandidatesFile)
	if err != nil {
		return err
	}

	workers := bulkWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	ctx := context.Background()
	if bulkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, bulkTimeout)
		defer cancel()
	}

	result, err := eng.EvaluateBulk(ctx, job, candidates, workers)
	if err != nil {
		return err
	}

	if bulkVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirement(job)
		printer.PrintBulkSummary(result)
	}

	if err := writeJSONOutput(bulkOutputFile, result); err != nil {
		return err
	}

	if databaseURL := resolveDatabaseURL(bulkDatabaseURL, cfg); databaseURL != "" {
		store, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		saved := 0
		for _, item := range result.Items {
			if item.Evaluation == nil {
				continue
			}
			if _, err := store.SaveEvaluation(ctx, item.Evaluation); err != nil {
				return err
			}
			saved++
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved %d evaluations\n", saved)
	}

	return nil
}
