package engine

import (
	"fmt"
	"strings"
)

// Quantifier selects how per-file verdicts combine into one filter verdict.
type Quantifier uint8

const (
	// QuantifierAny satisfies a filter when at least one changed file matches.
	QuantifierAny Quantifier = iota
	// QuantifierAll satisfies a filter only when every changed file matches.
	QuantifierAll
)

// ParseQuantifier parses a quantifier name ("any", "any-match", "all", "all-match").
func ParseQuantifier(s string) (Quantifier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "any-match":
		return QuantifierAny, nil
	case "all", "all-match":
		return QuantifierAll, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownQuantifier, s)
}

// String returns the canonical quantifier name.
func (q Quantifier) String() string {
	if q == QuantifierAll {
		return "all"
	}

	return "any"
}

// FilterResult is the outcome of evaluating one filter over a file set.
type FilterResult struct {
	// Satisfied is the aggregated boolean verdict.
	Satisfied bool
	// MatchedFiles are the changed files the filter included, in input order.
	MatchedFiles []string
}

// Results maps filter name to its evaluation outcome. It always carries
// exactly one entry per filter in the evaluated set.
type Results map[string]FilterResult

// Evaluate applies every filter in the set to the full changed-file list.
//
// Under QuantifierAny an empty file list yields false for every filter;
// under QuantifierAll it yields true (vacuous truth). Evaluation is pure
// and deterministic over the snapshot it is given.
func Evaluate(set *FilterSet, changedFiles []string, q Quantifier) Results {
	out := make(Results, set.Len())

	for _, name := range set.Names() {
		f, _ := set.Get(name)

		var matched []string
		for _, path := range changedFiles {
			if f.Matches(path) {
				matched = append(matched, path)
			}
		}

		satisfied := len(matched) > 0
		if q == QuantifierAll {
			satisfied = len(matched) == len(changedFiles)
		}

		out[name] = FilterResult{
			Satisfied:    satisfied,
			MatchedFiles: matched,
		}
	}

	return out
}
