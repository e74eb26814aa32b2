package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-relevance/internal/config"
	"github.com/jonathan/resume-relevance/internal/engine"
	"github.com/jonathan/resume-relevance/internal/schemas"
	"github.com/jonathan/resume-relevance/internal/types"
)

// checkSchema validates a JSON file against one of the shipped schemas.
// Validation failures are fatal; a missing or broken schema file only warns,
// since the decoded structs are validated again by the engine.
func checkSchema(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%s does not validate against schema: %w", jsonPath, err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", jsonPath, err)
	}
	return nil
}

func loadJobRequirement(path string) (*types.JobRequirement, error) {
	if err := checkSchema(schemas.JobRequirementSchema, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}

func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	if err := checkSchema(schemas.CandidateProfileSchema, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}
	return &candidate, nil
}

// loadCandidateProfiles reads a JSON array of candidate profiles.
func loadCandidateProfiles(path string) ([]*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var candidates []*types.CandidateProfile
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}
	return candidates, nil
}

// loadCLIConfig loads the optional config file, returning an empty config
// when no path is given.
func loadCLIConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine constructs the scoring engine from a loaded config file.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	if len(cfg.Synonyms) > 0 {
		return engine.NewWithSynonyms(cfg.EngineConfig(), cfg.Synonyms)
	}
	return engine.New(cfg.EngineConfig())
}

// writeJSONOutput writes indented JSON to the given path, or to stdout when
// the path is empty.
func writeJSONOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// resolveDatabaseURL picks the database URL from flag, config file, or
// environment, in that order.
func resolveDatabaseURL(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}
