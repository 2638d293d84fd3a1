package textclf

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Split partitions examples into a training and a held-out set while keeping each label's
// share roughly equal in both. Every label keeps at least one example in the training set.
// The same input, testSize and seed always produce the same split.
func Split(examples []Example, testSize float64, seed uint64) (train, test []Example, err error) {
	if testSize < 0 || testSize >= 1 {
		return nil, nil, ErrInvalidTestSize
	}
	if len(examples) == 0 {
		return nil, nil, ErrEmptyCorpus
	}

	groups := make(map[string][]int)
	for i, ex := range examples {
		groups[ex.Label] = append(groups[ex.Label], i)
	}
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rng := rand.New(rand.NewPCG(seed, seed))
	for _, label := range labels {
		idx := groups[label]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		nTest := int(math.Round(float64(len(idx)) * testSize))
		if nTest > len(idx)-1 {
			nTest = len(idx) - 1
		}
		for _, i := range idx[:nTest] {
			test = append(test, examples[i])
		}
		for _, i := range idx[nTest:] {
			train = append(train, examples[i])
		}
	}

	return train, test, nil
}
