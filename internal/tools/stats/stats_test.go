package stats_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_desk/internal/tools/stats"
)

func TestCompute(t *testing.T) {
	res := stats.Compute([]string{"5", "3", "8", "3", "9"})

	assert.Equal(t, 5, res.Count)
	assert.InDelta(t, 5.6, res.Mean, 1e-9)
	assert.InDelta(t, 5, res.Median, 1e-9)
	assert.Equal(t, 3, res.Mode)
	// population variance, not sample
	assert.InDelta(t, 6.24, res.Variance, 1e-9)
	assert.InDelta(t, 2.4979991993593593, res.StdDev, 1e-9)
	assert.Empty(t, res.Skipped)
}

func TestCompute_SkipsNonNumeric(t *testing.T) {
	res := stats.Compute([]string{"1", "abc", "", "  ", "2.5", "3"})

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []string{"abc", "2.5"}, res.Skipped)
}

func TestCompute_EvenCountMedian(t *testing.T) {
	res := stats.Compute([]string{"1", "2", "3", "4"})
	assert.InDelta(t, 2.5, res.Median, 1e-9)
}

func TestCompute_ModeFirstSeenWins(t *testing.T) {
	// ties resolve to the value seen first
	res := stats.Compute([]string{"7", "4", "4", "7"})
	assert.Equal(t, 7, res.Mode)
}

func TestCompute_Empty(t *testing.T) {
	res := stats.Compute([]string{"", "x"})
	assert.Equal(t, 0, res.Count)
}

func TestRender_LargeValuesStayDecimal(t *testing.T) {
	res := stats.Compute([]string{"0", "2000000"})

	var buf bytes.Buffer
	require.NoError(t, res.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Mean: 1000000,")
	assert.Contains(t, out, "Variance: 1000000000000,")
	assert.NotContains(t, out, "e+")
}

func TestRender(t *testing.T) {
	res := stats.Compute([]string{"5", "3", "8", "3", "9"})

	var buf bytes.Buffer
	require.NoError(t, res.Render(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Results:\n"))
	assert.Contains(t, out, "Count: 5, Mean: 5.6, Median: 5, Mode: 3, Variance: 6.24,")
}
