package textclf

import (
	"math"
	"sort"
)

// SparseVector holds the non-zero entries of a feature vector, indices ascending.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Dot returns the inner product of v with the dense vector w.
func (v SparseVector) Dot(w []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * w[idx]
	}
	return sum
}

// Vectorizer is a TF-IDF transform over word n-grams.
//
// The vocabulary is sorted lexicographically before indices are assigned, so fitting the same
// documents always yields the same feature space. IDF uses the smoothed form
// ln((1+n)/(1+df)) + 1 and every transformed vector is L2 normalised.
type Vectorizer struct {
	NgramMin   int            `json:"ngram_min"`
	NgramMax   int            `json:"ngram_max"`
	MinDF      int            `json:"min_df"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(ngramMin, ngramMax, minDF int) (*Vectorizer, error) {
	if ngramMin < 1 || ngramMax < ngramMin {
		return nil, ErrInvalidNgramRange
	}
	if minDF < 1 {
		minDF = 1
	}
	return &Vectorizer{NgramMin: ngramMin, NgramMax: ngramMax, MinDF: minDF}, nil
}

func (v *Vectorizer) tokenizer() Tokenizer {
	return Tokenizer{NgramMin: v.NgramMin, NgramMax: v.NgramMax}
}

// Features returns the size of the fitted feature space.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Fit learns the vocabulary and IDF weights from docs.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	tok := v.tokenizer()
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range tok.Terms(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= v.MinDF {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return ErrEmptyVocabulary
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return nil
}

// Transform maps doc into the fitted feature space. Unknown terms are ignored, so the
// result may be empty.
func (v *Vectorizer) Transform(doc string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range v.tokenizer().Terms(doc) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var norm float64
	for i, idx := range indices {
		values[i] = counts[idx] * v.IDF[idx]
		norm += values[i] * values[i]
	}
	norm = math.Sqrt(norm)
	for i := range values {
		values[i] /= norm
	}

	return SparseVector{Indices: indices, Values: values}
}

// FitTransform fits on docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) ([]SparseVector, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	out := make([]SparseVector, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out, nil
}
