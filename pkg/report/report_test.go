package report_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtrigger/pathtrigger/pkg/report"
)

func newTestReport() *report.Report {
	r := report.New("git-diff", "any", 3)
	r.AddFilter(report.FilterOutcome{
		Name:         "docs",
		Satisfied:    true,
		Patterns:     []string{"docs/**"},
		MatchedFiles: []string{"docs/readme.md"},
	})
	r.AddFilter(report.FilterOutcome{
		Name:      "infra",
		Satisfied: false,
		Patterns:  []string{"deploy/**"},
	})
	return r
}

func TestReport_WriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")

	r := newTestReport()
	require.NoError(t, r.Write(path))

	got, err := report.Read(path)
	require.NoError(t, err)

	assert.Equal(t, report.Version, got.Version)
	assert.Equal(t, "git-diff", got.Metadata.Source)
	assert.Equal(t, "any", got.Metadata.Quantifier)
	assert.Equal(t, 3, got.Metadata.ChangedFiles)
	assert.Equal(t, 2, got.Metadata.TotalFilters)

	require.Len(t, got.Filters, 2)
	assert.Equal(t, "docs", got.Filters[0].Name)
	assert.True(t, got.Filters[0].Satisfied)
	assert.Equal(t, []string{"docs/readme.md"}, got.Filters[0].MatchedFiles)
	assert.False(t, got.Filters[1].Satisfied)
}

func TestReport_Validate(t *testing.T) {
	t.Parallel()

	r := newTestReport()
	require.NoError(t, r.Validate())

	tcs := map[string]func(*report.Report){
		"missing version":      func(r *report.Report) { r.Version = "" },
		"unsupported version":  func(r *report.Report) { r.Version = "9.9" },
		"missing source":       func(r *report.Report) { r.Metadata.Source = "" },
		"missing evaluated_at": func(r *report.Report) { r.Metadata.EvaluatedAt = time.Time{} },
		"unnamed filter":       func(r *report.Report) { r.Filters[0].Name = "" },
		"count mismatch":       func(r *report.Report) { r.Metadata.TotalFilters = 5 },
	}

	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			broken := newTestReport()
			mutate(broken)
			assert.Error(t, broken.Validate())
		})
	}
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, newTestReport().Write(path))

	got, err := report.ValidateFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Metadata.TotalFilters)

	_, err = report.ValidateFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
