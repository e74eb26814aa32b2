// Package types provides type definitions for the structured records exchanged
// between the relevance engine and its upstream and downstream collaborators.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// JobRequirement represents a parsed job description as handed over by the
// upstream extraction collaborator. It is read-only for the duration of an
// evaluation.
type JobRequirement struct {
	ID                  string         `json:"id" validate:"required"`
	Title               string         `json:"title"`
	Description         string         `json:"description,omitempty"`
	MustHave            []string       `json:"must_have"`
	NiceToHave          []string       `json:"nice_to_have"`
	MinEducation        EducationLevel `json:"min_education,omitempty"`
	MinExperienceMonths int            `json:"min_experience_months" validate:"gte=0"`
	Location            string         `json:"location,omitempty"`
}

// Validate checks that the job carries the fields the engine requires.
// A missing identifier is a ValidationError; empty skill lists are not.
func (j *JobRequirement) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return &ValidationError{Record: "job", Message: "missing or invalid required fields", Cause: err}
	}
	if j.MinEducation != "" && !j.MinEducation.Valid() {
		return &ValidationError{Record: "job", Message: "unknown min_education level: " + string(j.MinEducation)}
	}
	return nil
}
