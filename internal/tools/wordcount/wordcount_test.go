package wordcount_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_desk/internal/tools/wordcount"
)

func TestCompute_FirstSeenOrder(t *testing.T) {
	res := wordcount.Compute([]string{"apple", "banana", "apple", "cherry", "banana", "apple"})

	assert.Equal(t, []wordcount.Entry{
		{Word: "apple", Count: 3},
		{Word: "banana", Count: 2},
		{Word: "cherry", Count: 1},
	}, res.Entries)
}

func TestCompute_CaseSensitive(t *testing.T) {
	res := wordcount.Compute([]string{"Go", "go", "Go"})

	assert.Equal(t, []wordcount.Entry{
		{Word: "Go", Count: 2},
		{Word: "go", Count: 1},
	}, res.Entries)
}

func TestCompute_SkipsNonAlphabetic(t *testing.T) {
	res := wordcount.Compute([]string{"word", "x1", "two words", "", "niño"})

	assert.Equal(t, []wordcount.Entry{
		{Word: "word", Count: 1},
		{Word: "niño", Count: 1},
	}, res.Entries)
	assert.Equal(t, []string{"x1", "two words", ""}, res.Skipped)
}

func TestRender(t *testing.T) {
	res := wordcount.Compute([]string{"b", "a", "b"})

	var buf bytes.Buffer
	require.NoError(t, res.Render(&buf))
	assert.Equal(t, "Results:\n1 Word: b, Occurrences: 2\n2 Word: a, Occurrences: 1\n", buf.String())
}
