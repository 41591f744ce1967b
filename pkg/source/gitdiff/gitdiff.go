// Package gitdiff provides the local git diff changed-file source.
package gitdiff

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pathtrigger/pathtrigger/pkg/source"
)

const (
	// SourceName is the identifier for this source.
	SourceName = "git-diff"

	// defaultBaseRef is used when no base revision is configured.
	defaultBaseRef = "origin/main"
)

func init() {
	// Register this source with the default registry
	source.Register(SourceName, NewSource)
}

// Source implements source.Source by diffing the working tree against a
// base revision with the git CLI.
type Source struct {
	baseRef string
	workDir string
}

// NewSource creates a new git diff source.
func NewSource() source.Source {
	return &Source{}
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return SourceName
}

// Description returns a human-readable description.
func (s *Source) Description() string {
	return "local git diff against a base revision"
}

// Configure initializes the source.
//
// Options:
//   - BaseRef: revision to diff against (default "origin/main")
//   - WorkDir: repository directory (default current directory)
func (s *Source) Configure(_ context.Context, opts source.Options) error {
	s.baseRef = opts.BaseRef
	if s.baseRef == "" {
		s.baseRef = defaultBaseRef
	}

	s.workDir = opts.WorkDir
	return nil
}

// ChangedFiles runs "git diff --name-only <base>...HEAD" and returns the
// listed paths. The three-dot form diffs from the merge base, matching
// what a pull request against <base> would contain.
func (s *Source) ChangedFiles(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", "--no-renames", s.baseRef+"...HEAD")
	cmd.Dir = s.workDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return nil, fmt.Errorf("%w: git diff %s...HEAD: %s", source.ErrSourceUnavailable, s.baseRef, msg)
	}

	return splitNameOnly(out), nil
}

// splitNameOnly splits git --name-only output into one path per line.
func splitNameOnly(out []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}

	return paths
}
