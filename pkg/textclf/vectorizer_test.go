package textclf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextact/pkg/textclf"
)

func TestTokenizer_Terms(t *testing.T) {
	tok := textclf.Tokenizer{NgramMin: 1, NgramMax: 2}

	got := tok.Terms("Nộp BÁO CÁO gấp!")
	assert.Equal(t, []string{"nộp", "báo", "cáo", "gấp", "nộp báo", "báo cáo", "cáo gấp"}, got)

	// Single character tokens are dropped before n-grams are built.
	assert.Equal(t, []string{"đi", "nhà"}, textclf.Tokenizer{NgramMin: 1, NgramMax: 1}.Terms("đi ở nhà"))

	assert.Empty(t, tok.Terms("  ! ? "))
}

func TestNewVectorizer_InvalidRange(t *testing.T) {
	_, err := textclf.NewVectorizer(2, 1, 1)
	assert.ErrorIs(t, err, textclf.ErrInvalidNgramRange)

	_, err = textclf.NewVectorizer(0, 1, 1)
	assert.ErrorIs(t, err, textclf.ErrInvalidNgramRange)
}

func TestVectorizer_MinDF(t *testing.T) {
	vec, err := textclf.NewVectorizer(1, 1, 2)
	require.NoError(t, err)

	require.NoError(t, vec.Fit([]string{"mua sữa", "mua rau", "họp nhóm"}))
	assert.Equal(t, map[string]int{"mua": 0}, vec.Vocabulary)
	assert.InDelta(t, math.Log(4.0/3.0)+1, vec.IDF[0], 1e-12)

	v := vec.Transform("mua sữa")
	assert.Equal(t, []int{0}, v.Indices)
	assert.InDelta(t, 1.0, v.Values[0], 1e-12)

	assert.Empty(t, vec.Transform("đọc sách").Indices)
}

func TestVectorizer_SortedVocabulary(t *testing.T) {
	vec, err := textclf.NewVectorizer(1, 2, 1)
	require.NoError(t, err)
	require.NoError(t, vec.Fit([]string{"zeta alpha", "beta"}))

	assert.Equal(t, map[string]int{
		"alpha":      0,
		"beta":       1,
		"zeta":       2,
		"zeta alpha": 3,
	}, vec.Vocabulary)
}

func TestVectorizer_L2Normalised(t *testing.T) {
	vec, err := textclf.NewVectorizer(1, 2, 1)
	require.NoError(t, err)
	X, err := vec.FitTransform([]string{"gấp nộp báo cáo ngay", "mua sữa cho con", "gấp gấp mua"})
	require.NoError(t, err)

	for _, x := range X {
		var sq float64
		for _, v := range x.Values {
			sq += v * v
		}
		assert.InDelta(t, 1.0, sq, 1e-9)
		for i := 1; i < len(x.Indices); i++ {
			assert.Less(t, x.Indices[i-1], x.Indices[i])
		}
	}
}

func TestVectorizer_EmptyVocabulary(t *testing.T) {
	vec, err := textclf.NewVectorizer(1, 1, 5)
	require.NoError(t, err)
	assert.ErrorIs(t, vec.Fit([]string{"một hai", "ba bốn"}), textclf.ErrEmptyVocabulary)
	assert.ErrorIs(t, vec.Fit(nil), textclf.ErrEmptyCorpus)
}
