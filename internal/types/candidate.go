package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile represents a parsed resume as handed over by the upstream
// extraction collaborator. All collections may be empty; only the identifier
// is mandatory.
type CandidateProfile struct {
	ID             string                `json:"id" validate:"required"`
	Name           string                `json:"name,omitempty"`
	Email          string                `json:"email,omitempty" validate:"omitempty,email"`
	Skills         []string              `json:"skills"`
	Education      []EducationRecord     `json:"education"`
	Experience     []ExperienceRecord    `json:"experience"`
	Projects       []ProjectRecord       `json:"projects"`
	Certifications []CertificationRecord `json:"certifications"`
}

// EducationRecord represents a single degree held by the candidate.
type EducationRecord struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// ExperienceRecord represents a single work engagement.
type ExperienceRecord struct {
	Months      int    `json:"months" validate:"gte=0"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectRecord represents a portfolio project with the technologies it used.
type ProjectRecord struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

// CertificationRecord represents a professional certification.
type CertificationRecord struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
}

// Validate checks that the profile carries the fields the engine requires.
// Empty skill, education, experience, project, and certification collections
// are valid; they degrade to the default scoring rules instead of failing.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ValidationError{Record: "candidate", Message: "missing or invalid required fields", Cause: err}
	}
	return nil
}

// HighestEducation returns the highest degree level found across the
// candidate's education records, or EducationNone when there are none or no
// degree string is recognized.
func (c *CandidateProfile) HighestEducation() EducationLevel {
	highest := EducationNone
	for _, rec := range c.Education {
		level := ParseEducationLevel(rec.Degree)
		if level.Rank() > highest.Rank() {
			highest = level
		}
	}
	return highest
}

// TotalExperienceMonths sums the duration of all work-experience records.
func (c *CandidateProfile) TotalExperienceMonths() int {
	total := 0
	for _, rec := range c.Experience {
		if rec.Months > 0 {
			total += rec.Months
		}
	}
	return total
}
