// Package source defines the interface for changed-file sources.
package source

import (
	"context"
	"errors"
)

// ErrSourceUnavailable indicates the source could not produce a changed-file
// list (missing event context, credentials, or repository state). Callers
// treat it as "empty list", never as a fatal failure.
var ErrSourceUnavailable = errors.New("changed-file source unavailable")

// Options configures a source. Fields are source-specific; sources ignore
// fields they do not use, so one options struct can be passed to any source.
type Options struct {
	// Repo is the "owner/name" repository slug (github-pr).
	Repo string
	// PullNumber is the pull request number (github-pr).
	PullNumber int
	// Token is the API token; anonymous access is used when empty (github-pr).
	Token string
	// APIBaseURL overrides the API endpoint, e.g. for GitHub Enterprise
	// or tests (github-pr).
	APIBaseURL string
	// BaseRef is the revision to diff against (git-diff).
	BaseRef string
	// WorkDir is the repository working directory (git-diff).
	WorkDir string
}

// Source is the interface all changed-file sources implement.
type Source interface {
	// Name returns the source identifier (e.g., "git-diff").
	Name() string

	// Description returns a human-readable description of the source.
	Description() string

	// Configure initializes the source with the provided options.
	Configure(ctx context.Context, opts Options) error

	// ChangedFiles fetches the complete changed-file list upfront as one
	// snapshot. It returns an error wrapping ErrSourceUnavailable when no
	// list can be produced.
	ChangedFiles(ctx context.Context) ([]string, error)
}

// Factory creates new Source instances.
type Factory func() Source
