package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtrigger/pathtrigger/pkg/selector"
)

func TestNameSelector_Matches(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		includes []string
		excludes []string
		name     string
		want     bool
	}{
		"no patterns selects all": {
			name: "docs",
			want: true,
		},
		"include hit": {
			includes: []string{"unit-*"},
			name:     "unit-fast",
			want:     true,
		},
		"include miss": {
			includes: []string{"unit-*"},
			name:     "e2e",
			want:     false,
		},
		"exclude wins over include": {
			includes: []string{"unit-*"},
			excludes: []string{"unit-slow"},
			name:     "unit-slow",
			want:     false,
		},
		"exclude only": {
			excludes: []string{"*-wip"},
			name:     "docs-wip",
			want:     false,
		},
		"exclude only, miss": {
			excludes: []string{"*-wip"},
			name:     "docs",
			want:     true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := selector.New(tc.includes, tc.excludes)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Matches(tc.name))
		})
	}
}

func TestNameSelector_Apply(t *testing.T) {
	t.Parallel()

	s, err := selector.New([]string{"unit-*", "docs"}, []string{"unit-slow"})
	require.NoError(t, err)

	got := s.Apply([]string{"docs", "unit-fast", "unit-slow", "e2e"})
	assert.Equal(t, []string{"docs", "unit-fast"}, got)
	assert.True(t, s.HasPatterns())
}

func TestNew_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := selector.New([]string{"[unclosed"}, nil)
	require.Error(t, err)

	_, err = selector.New(nil, []string{"[unclosed"})
	require.Error(t, err)
}
