// Package report defines the evaluation report file contract/schema.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Version is the current schema version.
const Version = "1.0"

// Report represents the structure of an evaluation report file.
type Report struct {
	// Version is the schema version
	Version string `json:"version"`

	// Metadata contains information about the evaluation run
	Metadata Metadata `json:"metadata"`

	// Filters is the per-filter outcome list, in definition order
	Filters []FilterOutcome `json:"filters"`
}

// Metadata contains metadata about the evaluation run.
type Metadata struct {
	// Source is the changed-file source identifier (e.g., "git-diff")
	Source string `json:"source"`

	// EvaluatedAt is when the evaluation was performed
	EvaluatedAt time.Time `json:"evaluated_at"`

	// Quantifier is the aggregation mode used ("any" or "all")
	Quantifier string `json:"quantifier"`

	// ChangedFiles is the number of changed files evaluated
	ChangedFiles int `json:"changed_files"`

	// TotalFilters is the count of filters in the report
	TotalFilters int `json:"total_filters"`
}

// FilterOutcome is one filter's verdict.
type FilterOutcome struct {
	// Name is the filter name
	Name string `json:"name"`

	// Satisfied is the aggregated boolean verdict
	Satisfied bool `json:"satisfied"`

	// Patterns are the raw patterns of the filter
	Patterns []string `json:"patterns,omitempty"`

	// MatchedFiles are the changed files the filter included
	MatchedFiles []string `json:"matched_files,omitempty"`
}

// New creates a new Report with the current version.
func New(sourceName, quantifier string, changedFiles int) *Report {
	return &Report{
		Version: Version,
		Metadata: Metadata{
			Source:       sourceName,
			EvaluatedAt:  time.Now().UTC(),
			Quantifier:   quantifier,
			ChangedFiles: changedFiles,
		},
		Filters: []FilterOutcome{},
	}
}

// AddFilter adds one filter outcome to the report.
func (r *Report) AddFilter(outcome FilterOutcome) {
	r.Filters = append(r.Filters, outcome)
	r.Metadata.TotalFilters = len(r.Filters)
}

// Write writes the report to the specified path.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Read reads and parses a report file from the specified path.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &r, nil
}

// Validate checks if the report is valid according to the schema.
func (r *Report) Validate() error {
	if r.Version == "" {
		return fmt.Errorf("missing required field: version")
	}

	if r.Version != Version {
		return fmt.Errorf("unsupported schema version: %s (expected %s)", r.Version, Version)
	}

	if r.Metadata.Source == "" {
		return fmt.Errorf("missing required field: metadata.source")
	}

	if r.Metadata.EvaluatedAt.IsZero() {
		return fmt.Errorf("missing required field: metadata.evaluated_at")
	}

	for i, f := range r.Filters {
		if f.Name == "" {
			return fmt.Errorf("filter at index %d: missing required field: name", i)
		}
	}

	// Validate TotalFilters matches actual count
	if r.Metadata.TotalFilters != len(r.Filters) {
		return fmt.Errorf("metadata.total_filters (%d) does not match actual filter count (%d)",
			r.Metadata.TotalFilters, len(r.Filters))
	}

	return nil
}

// ValidateFile reads and validates a report file.
func ValidateFile(path string) (*Report, error) {
	r, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return r, nil
}
