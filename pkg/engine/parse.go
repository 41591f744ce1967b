package engine

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// filterNameRE matches a filter-declaration line: identifier plus colon.
var filterNameRE = regexp.MustCompile(`^[A-Za-z0-9_.-]+:$`)

// Parse parses a filter definition document.
//
// Format, line by line:
//   - blank lines and "#" comments are ignored
//   - "name:" starts a new filter with an empty pattern list
//   - "- pattern" appends a pattern to the current filter
//
// A pattern line before any filter declaration, a duplicate filter name,
// and any unrecognized line are rejected with ErrMalformedDefinition, as
// is a document declaring no filters at all.
func Parse(r io.Reader) (*FilterSet, error) {
	set := NewFilterSet()

	var current *Filter
	lineNo := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++

		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if filterNameRE.MatchString(line) {
			if current != nil {
				if err := set.Add(current); err != nil {
					return nil, err
				}
			}

			current = &Filter{Name: strings.TrimSuffix(line, ":")}
			continue
		}

		if rest, ok := strings.CutPrefix(line, "-"); ok {
			if current == nil {
				return nil, fmt.Errorf("%w: line %d: pattern before any filter name", ErrMalformedDefinition, lineNo)
			}

			p, err := Compile(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("filter %q: line %d: %w", current.Name, lineNo, err)
			}

			current.append(p)
			continue
		}

		return nil, fmt.Errorf("%w: line %d: unrecognized line %q", ErrMalformedDefinition, lineNo, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan definition: %w", err)
	}

	if current != nil {
		if err := set.Add(current); err != nil {
			return nil, err
		}
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: no filters found", ErrMalformedDefinition)
	}

	return set, nil
}

// ParseString parses a filter definition from string input.
func ParseString(src string) (*FilterSet, error) {
	return Parse(strings.NewReader(src))
}
