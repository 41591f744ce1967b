// Package selector provides glob-based filter-name selection.
package selector

import (
	"github.com/gobwas/glob"
)

// NameSelector selects filter names based on include/exclude glob patterns.
type NameSelector struct {
	includes []glob.Glob
	excludes []glob.Glob
}

// New creates a NameSelector from include and exclude patterns. Filter
// names are flat identifiers, so patterns compile without a separator.
func New(includePatterns, excludePatterns []string) (*NameSelector, error) {
	s := &NameSelector{}

	for _, p := range includePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}
		s.includes = append(s.includes, g)
	}

	for _, p := range excludePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}
		s.excludes = append(s.excludes, g)
	}

	return s, nil
}

// Matches returns true if the name passes the selection criteria.
// A name is selected if:
// - It matches at least one include pattern (or no includes are specified)
// - It does not match any exclude pattern
func (s *NameSelector) Matches(name string) bool {
	// Check excludes first
	for _, g := range s.excludes {
		if g.Match(name) {
			return false
		}
	}

	// If no includes specified, select everything
	if len(s.includes) == 0 {
		return true
	}

	// Check includes
	for _, g := range s.includes {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// HasPatterns returns true if any patterns are configured.
func (s *NameSelector) HasPatterns() bool {
	return len(s.includes) > 0 || len(s.excludes) > 0
}

// Apply filters names, preserving input order.
func (s *NameSelector) Apply(names []string) []string {
	selected := make([]string, 0, len(names))
	for _, name := range names {
		if s.Matches(name) {
			selected = append(selected, name)
		}
	}

	return selected
}
