package engine

import "fmt"

// Filter is a named, ordered list of compiled patterns.
type Filter struct {
	// Name is the filter identifier from the definition document.
	Name string
	// Patterns are compiled in declaration order. Order is load-bearing:
	// a later pattern overrides an earlier verdict for paths both match.
	Patterns []Pattern

	hasPositive bool
}

// NewFilter compiles raw patterns into a filter.
func NewFilter(name string, patterns []string) (*Filter, error) {
	f := &Filter{Name: name}

	for _, raw := range patterns {
		p, err := Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", name, err)
		}

		f.append(p)
	}

	return f, nil
}

func (f *Filter) append(p Pattern) {
	f.Patterns = append(f.Patterns, p)
	if !p.Negated {
		f.hasPositive = true
	}
}

// Matches reports whether path is included by the filter.
//
// Decision policy:
//   - a filter with no patterns never matches
//   - the initial verdict is false when the filter has at least one
//     non-negated pattern, true for an all-negation list
//   - patterns are scanned in declaration order and every matching
//     pattern overrides the running verdict (last match wins)
func (f *Filter) Matches(path string) bool {
	if len(f.Patterns) == 0 {
		return false
	}

	included := !f.hasPositive
	for i := range f.Patterns {
		if f.Patterns[i].Match(path) {
			included = !f.Patterns[i].Negated
		}
	}

	return included
}

// FilterSet is an ordered collection of uniquely named filters.
type FilterSet struct {
	names   []string
	filters map[string]*Filter
}

// NewFilterSet creates an empty filter set.
func NewFilterSet() *FilterSet {
	return &FilterSet{filters: make(map[string]*Filter)}
}

// Add appends a filter, rejecting duplicate names.
func (s *FilterSet) Add(f *Filter) error {
	if _, ok := s.filters[f.Name]; ok {
		return fmt.Errorf("%w: duplicate filter %q", ErrMalformedDefinition, f.Name)
	}

	s.names = append(s.names, f.Name)
	s.filters[f.Name] = f
	return nil
}

// Get returns the named filter.
func (s *FilterSet) Get(name string) (*Filter, bool) {
	f, ok := s.filters[name]
	return f, ok
}

// Names returns filter names in insertion order.
func (s *FilterSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of filters in the set.
func (s *FilterSet) Len() int {
	return len(s.names)
}
