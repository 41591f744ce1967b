package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtrigger/pathtrigger/pkg/engine"
)

func TestParseString(t *testing.T) {
	t.Parallel()

	src := `
# filters for CI triggers
docs:
  - docs/**
  - "*.md"

code:
  - src/**
  - "!src/**/*.md"

empty:
`

	set, err := engine.ParseString(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"docs", "code", "empty"}, set.Names())

	docs, ok := set.Get("docs")
	require.True(t, ok)
	require.Len(t, docs.Patterns, 2)
	assert.Equal(t, "docs/**", docs.Patterns[0].Raw)
	assert.Equal(t, `"*.md"`, docs.Patterns[1].Raw)

	code, ok := set.Get("code")
	require.True(t, ok)
	require.Len(t, code.Patterns, 2)
	assert.False(t, code.Patterns[0].Negated)
	assert.True(t, code.Patterns[1].Negated)

	empty, ok := set.Get("empty")
	require.True(t, ok)
	assert.Empty(t, empty.Patterns)
}

func TestParseString_NameCharset(t *testing.T) {
	t.Parallel()

	set, err := engine.ParseString("unit-tests.v2_beta:\n  - tests/**\n")
	require.NoError(t, err)

	_, ok := set.Get("unit-tests.v2_beta")
	assert.True(t, ok)
}

func TestParseString_Malformed(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"empty document":             "",
		"comments only":              "# nothing here\n",
		"pattern before any filter":  "- src/**\ndocs:\n  - docs/**\n",
		"unrecognized line":          "docs:\n  docs/**\n",
		"name with space":            "my docs:\n  - docs/**\n",
		"name with trailing content": "docs: docs/**\n",
		"duplicate filter name":      "docs:\n  - docs/**\ndocs:\n  - other/**\n",
	}

	for name, src := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := engine.ParseString(src)
			require.ErrorIs(t, err, engine.ErrMalformedDefinition)
		})
	}
}

func TestParseString_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := engine.ParseString("docs:\n  - !\n")
	require.ErrorIs(t, err, engine.ErrInvalidPattern)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseString_PatternOrderPreserved(t *testing.T) {
	t.Parallel()

	set, err := engine.ParseString("f:\n  - a\n  - b\n  - c\n")
	require.NoError(t, err)

	f, _ := set.Get("f")
	raws := make([]string, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		raws = append(raws, p.Raw)
	}

	assert.Equal(t, []string{"a", "b", "c"}, raws)
}
