package gitdiff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtrigger/pathtrigger/pkg/source"
)

func TestConfigure_Defaults(t *testing.T) {
	t.Parallel()

	s := &Source{}
	require.NoError(t, s.Configure(context.Background(), source.Options{}))
	assert.Equal(t, defaultBaseRef, s.baseRef)

	require.NoError(t, s.Configure(context.Background(), source.Options{BaseRef: "origin/release", WorkDir: "/tmp/repo"}))
	assert.Equal(t, "origin/release", s.baseRef)
	assert.Equal(t, "/tmp/repo", s.workDir)
}

func TestSplitNameOnly(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		out  string
		want []string
	}{
		"empty output": {
			out:  "",
			want: nil,
		},
		"single path": {
			out:  "src/main.go\n",
			want: []string{"src/main.go"},
		},
		"multiple paths with blank lines": {
			out:  "src/main.go\n\ndocs/readme.md\npkg/a_test.go\n",
			want: []string{"src/main.go", "docs/readme.md", "pkg/a_test.go"},
		},
		"windows line endings": {
			out:  "src/main.go\r\ndocs/readme.md\r\n",
			want: []string{"src/main.go", "docs/readme.md"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, splitNameOnly([]byte(tc.out)))
		})
	}
}

func TestChangedFiles_OutsideRepo(t *testing.T) {
	t.Parallel()

	s := &Source{}
	require.NoError(t, s.Configure(context.Background(), source.Options{WorkDir: t.TempDir()}))

	_, err := s.ChangedFiles(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrSourceUnavailable))
}
