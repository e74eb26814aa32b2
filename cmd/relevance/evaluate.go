package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/db"
	"github.com/jonathan/resume-relevance/internal/observability"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one candidate against one job",
	Long:  "Evaluate a candidate profile JSON against a job requirement JSON and emit the scored evaluation with verdict and feedback.",
	RunE:  runEvaluate,
}

var (
	evaluateJobFile       string
	evaluateCandidateFile string
	evaluateOutputFile    string
	evaluateConfigFile    string
	evaluateDatabaseURL   string
	evaluateVerbose       bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateJobFile, "job", "j", "", "Path to job requirement JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateCandidateFile, "candidate", "c", "", "Path to candidate profile JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	evaluateCmd.Flags().StringVar(&evaluateConfigFile, "config", "", "Path to config JSON file with scoring overrides")
	evaluateCmd.Flags().StringVar(&evaluateDatabaseURL, "database-url", "", "PostgreSQL URL for persisting the evaluation (overrides DATABASE_URL env var)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print a per-criterion breakdown to stderr")

	_ = evaluateCmd.MarkFlagRequired("job")
	_ = evaluateCmd.MarkFlagRequired("candidate")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(evaluateConfigFile)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	job, err := loadJobRequirement(evaluateJobFile)
	if err != nil {
		return err
	}
	candidate, err := loadCandidateProfile(evaluateCandidateFile)
	if err != nil {
		return err
	}

	eval, err := eng.Evaluate(job, candidate)
	if err != nil {
		return err
	}

	if evaluateVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirement(job)
		printer.PrintEvaluation(eval)
	}

	if err := writeJSONOutput(evaluateOutputFile, eval); err != nil {
		return err
	}

	if databaseURL := resolveDatabaseURL(evaluateDatabaseURL, cfg); databaseURL != "" {
		ctx := context.Background()
		store, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		id, err := store.SaveEvaluation(ctx, eval)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved evaluation %s\n", id)
	}

	return nil
}
