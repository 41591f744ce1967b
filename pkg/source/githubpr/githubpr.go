// Package githubpr provides the GitHub pull request changed-file source.
package githubpr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/pathtrigger/pathtrigger/pkg/source"
)

const (
	// SourceName is the identifier for this source.
	SourceName = "github-pr"

	// perPage is the page size for the list-files API call.
	perPage = 100
)

func init() {
	// Register this source with the default registry
	source.Register(SourceName, NewSource)
}

// Source implements source.Source for the GitHub pull request files API.
type Source struct {
	client     *github.Client
	owner      string
	repo       string
	pullNumber int
}

// NewSource creates a new GitHub pull request source.
func NewSource() source.Source {
	return &Source{}
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return SourceName
}

// Description returns a human-readable description.
func (s *Source) Description() string {
	return "GitHub pull request files API"
}

// Configure initializes the source with repository coordinates and an
// optional API token.
//
// Options:
//   - Repo: "owner/name" slug (required)
//   - PullNumber: pull request number (required)
//   - Token: API token; unauthenticated when empty
//   - APIBaseURL: endpoint override for GitHub Enterprise or tests
//
// Missing coordinates mean the run is not a pull-request context, so the
// error wraps source.ErrSourceUnavailable rather than a hard failure.
func (s *Source) Configure(ctx context.Context, opts source.Options) error {
	owner, repo, err := splitRepo(opts.Repo)
	if err != nil {
		return fmt.Errorf("%w: %v", source.ErrSourceUnavailable, err)
	}

	if opts.PullNumber <= 0 {
		return fmt.Errorf("%w: no pull request number", source.ErrSourceUnavailable)
	}

	var hc *http.Client
	if opts.Token != "" {
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}))
	}

	client := github.NewClient(hc)
	if opts.APIBaseURL != "" {
		client, err = client.WithEnterpriseURLs(opts.APIBaseURL, opts.APIBaseURL)
		if err != nil {
			return fmt.Errorf("invalid API base URL: %w", err)
		}
	}

	s.client = client
	s.owner = owner
	s.repo = repo
	s.pullNumber = opts.PullNumber
	return nil
}

// ChangedFiles fetches the complete pull request file list, following
// pagination until the snapshot is complete.
func (s *Source) ChangedFiles(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: source not configured", source.ErrSourceUnavailable)
	}

	var paths []string
	opt := &github.ListOptions{PerPage: perPage}

	for {
		files, resp, err := s.client.PullRequests.ListFiles(ctx, s.owner, s.repo, s.pullNumber, opt)
		if err != nil {
			return nil, fmt.Errorf("%w: list pull request files: %v", source.ErrSourceUnavailable, err)
		}

		for _, f := range files {
			if name := f.GetFilename(); name != "" {
				paths = append(paths, name)
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return paths, nil
}

// splitRepo splits an "owner/name" slug.
func splitRepo(slug string) (string, string, error) {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("no repository slug (want owner/name, got %q)", slug)
	}

	return owner, repo, nil
}
