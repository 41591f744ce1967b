package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtrigger/pathtrigger/pkg/source"
)

type fakeSource struct {
	files []string
}

func (f *fakeSource) Name() string        { return "fake" }
func (f *fakeSource) Description() string { return "fake source for tests" }

func (f *fakeSource) Configure(context.Context, source.Options) error { return nil }

func (f *fakeSource) ChangedFiles(context.Context) ([]string, error) {
	return f.files, nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := source.NewRegistry()
	assert.False(t, r.Has("fake"))

	r.Register("fake", func() source.Source {
		return &fakeSource{files: []string{"a.go"}}
	})

	assert.True(t, r.Has("fake"))
	assert.Equal(t, []string{"fake"}, r.List())

	src, err := r.Get("fake")
	require.NoError(t, err)
	assert.Equal(t, "fake", src.Name())

	files, err := src.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go"}, files)

	_, err = r.Get("missing")
	require.Error(t, err)
}

func TestRegistry_ListSorted(t *testing.T) {
	t.Parallel()

	r := source.NewRegistry()
	factory := func() source.Source { return &fakeSource{} }
	r.Register("zeta", factory)
	r.Register("alpha", factory)
	r.Register("mid", factory)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.List())
}
