package scenario

import (
	"context"
	"strings"
	"testing"

	"github.com/osuushi/gjk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(`
strict_centroids: true
cases:
  - a: [[0, 0], [1, 0], [0, 1]]
    b: [[3, 3]]
    expect: false
`))
	require.NoError(t, err)
	assert.Equal(t, 0, f.MaxIterations)
	assert.True(t, f.Options().StrictCentroids)
	require.Len(t, f.Cases, 1)
	assert.Equal(t, "case 1", f.Cases[0].Name, "unnamed cases get a name")
	require.NotNil(t, f.Cases[0].Expect)
	assert.False(t, *f.Cases[0].Expect)

	polygons, err := f.Cases[0].Polygons()
	require.NoError(t, err)
	assert.Len(t, polygons[0], 3)
	assert.Equal(t, gjk.Point{X: 3, Y: 3}, *polygons[1][0])
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "cases: []\nmax_iteration: 3\n",
		"bad vertex":     "cases:\n  - a: [[0, 0, 0]]\n    b: [[1, 1]]\n",
		"not a sequence": "cases: 3\n",
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/missing.yaml")
		assert.Error(t, err)
	})
}

func TestRunner(t *testing.T) {
	f, err := LoadFile("testdata/cases.yaml")
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	runner := &Runner{Logger: zap.New(core), Concurrency: 2}
	reports, err := runner.Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, reports, len(f.Cases))

	for i, report := range reports {
		assert.Equal(t, f.Cases[i].Name, report.Case.Name, "reports keep file order")
		assert.True(t, report.Passed(), "%s: got %v, err %v", report.Case.Name, report.Got, report.Err)
	}
	last := reports[len(reports)-1]
	assert.ErrorIs(t, last.Err, gjk.ErrInvalidInput)
	assert.Zero(t, logs.FilterMessage("case failed").Len())
	assert.Equal(t, len(f.Cases), logs.FilterMessage("case passed").Len())
}

func TestRunner_ReportsMismatch(t *testing.T) {
	wrong := true
	f := &File{Cases: []Case{{
		Name:   "lies",
		A:      [][]float64{{0, 0}, {1, 0}, {0, 1}},
		B:      [][]float64{{5, 5}, {6, 5}, {5, 6}},
		Expect: &wrong,
	}}}
	core, logs := observer.New(zap.WarnLevel)
	reports, err := (&Runner{Logger: zap.New(core)}).Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Passed())
	assert.False(t, reports[0].Got)
	assert.Equal(t, 1, logs.FilterMessage("case failed").Len())
}

func TestRunner_Cancelled(t *testing.T) {
	f, err := LoadFile("testdata/cases.yaml")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&Runner{}).Run(ctx, f)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_IterationLimit(t *testing.T) {
	f, err := LoadFile("testdata/cases.yaml")
	require.NoError(t, err)
	f.MaxIterations = 1
	reports, err := (&Runner{}).Run(context.Background(), f)
	require.NoError(t, err)
	// Overlapping squares need two iterations
	assert.ErrorIs(t, reports[0].Err, gjk.ErrNoConvergence)
	assert.False(t, reports[0].Passed())
	// Distant squares are rejected on the first
	assert.True(t, reports[1].Passed())
}
