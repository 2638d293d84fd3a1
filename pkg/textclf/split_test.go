package textclf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextact/pkg/textclf"
)

func labelledCorpus(counts map[string]int) []textclf.Example {
	var out []textclf.Example
	for _, label := range []string{"work", "study", "health", "rare"} {
		for i := 0; i < counts[label]; i++ {
			out = append(out, textclf.Example{Text: fmt.Sprintf("%s %d", label, i), Label: label})
		}
	}
	return out
}

func countLabels(examples []textclf.Example) map[string]int {
	out := make(map[string]int)
	for _, ex := range examples {
		out[ex.Label]++
	}
	return out
}

func TestSplit_Stratified(t *testing.T) {
	corpus := labelledCorpus(map[string]int{"work": 50, "study": 30, "health": 20, "rare": 1})

	train, test, err := textclf.Split(corpus, 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, append(train, test...), len(corpus))

	testCounts := countLabels(test)
	assert.Equal(t, 10, testCounts["work"])
	assert.Equal(t, 6, testCounts["study"])
	assert.Equal(t, 4, testCounts["health"])
	assert.Equal(t, 0, testCounts["rare"])

	trainCounts := countLabels(train)
	assert.Equal(t, 1, trainCounts["rare"])
	assert.Equal(t, 40, trainCounts["work"])
}

func TestSplit_Deterministic(t *testing.T) {
	corpus := labelledCorpus(map[string]int{"work": 25, "study": 15})

	trainA, testA, err := textclf.Split(corpus, 0.2, 42)
	require.NoError(t, err)
	trainB, testB, err := textclf.Split(corpus, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, trainA, trainB)
	assert.Equal(t, testA, testB)

	_, testC, err := textclf.Split(corpus, 0.2, 7)
	require.NoError(t, err)
	assert.NotEqual(t, testA, testC)
}

func TestSplit_DoesNotMutateInput(t *testing.T) {
	corpus := labelledCorpus(map[string]int{"work": 10, "study": 10})
	before := append([]textclf.Example(nil), corpus...)

	_, _, err := textclf.Split(corpus, 0.3, 1)
	require.NoError(t, err)
	assert.Equal(t, before, corpus)
}

func TestSplit_Errors(t *testing.T) {
	corpus := labelledCorpus(map[string]int{"work": 3})

	_, _, err := textclf.Split(corpus, 1, 42)
	assert.ErrorIs(t, err, textclf.ErrInvalidTestSize)
	_, _, err = textclf.Split(corpus, -0.1, 42)
	assert.ErrorIs(t, err, textclf.ErrInvalidTestSize)
	_, _, err = textclf.Split(nil, 0.2, 42)
	assert.ErrorIs(t, err, textclf.ErrEmptyCorpus)
}

func TestSplit_ZeroTestSize(t *testing.T) {
	corpus := labelledCorpus(map[string]int{"work": 5, "study": 5})
	train, test, err := textclf.Split(corpus, 0, 42)
	require.NoError(t, err)
	assert.Len(t, train, 10)
	assert.Empty(t, test)
}
