package textclf

import (
	"math"
	"sort"
)

// FitOptions configures LogisticRegression.Fit.
type FitOptions struct {
	// C is the inverse L2 regularisation strength.
	C            float64
	MaxIter      int
	Tol          float64
	LearningRate float64
	// Progress, when set, is called after every iteration.
	Progress func(iter int, loss float64)
}

// FitStats summarises a solver run.
type FitStats struct {
	Iterations int     `json:"iterations"`
	Loss       float64 `json:"loss"`
	Converged  bool    `json:"converged"`
}

// LogisticRegression is a multinomial (softmax) linear classifier.
// Classes are sorted; row k of Coef and Intercept[k] belong to Classes[k].
type LogisticRegression struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// Fit trains the model with full-batch gradient descent on the mean cross-entropy plus
// ||W||^2 / (2·C·n). The intercept is not regularised. Weights start at zero, so the result
// only depends on the data and options.
func (m *LogisticRegression) Fit(X []SparseVector, y []string, nFeatures int, opts FitOptions) (FitStats, error) {
	if len(X) == 0 {
		return FitStats{}, ErrEmptyCorpus
	}
	if len(X) != len(y) {
		return FitStats{}, ErrLengthMismatch
	}
	opts = withFitDefaults(opts)

	m.Classes = uniqueSorted(y)
	if len(m.Classes) < 2 {
		return FitStats{}, ErrSingleLabel
	}
	classIndex := make(map[string]int, len(m.Classes))
	for k, c := range m.Classes {
		classIndex[c] = k
	}
	targets := make([]int, len(y))
	for i, label := range y {
		targets[i] = classIndex[label]
	}

	K := len(m.Classes)
	n := float64(len(X))
	lambda := 1 / (opts.C * n)

	m.Coef = newMatrix(K, nFeatures)
	m.Intercept = make([]float64, K)
	gradW := newMatrix(K, nFeatures)
	gradB := make([]float64, K)
	probs := make([]float64, K)

	var stats FitStats
	for iter := 1; iter <= opts.MaxIter; iter++ {
		for k := range gradW {
			clear(gradW[k])
		}
		clear(gradB)

		var loss float64
		for i, x := range X {
			m.scores(x, probs)
			softmaxInPlace(probs)
			loss -= math.Log(math.Max(probs[targets[i]], 1e-300))

			for k := 0; k < K; k++ {
				g := probs[k]
				if k == targets[i] {
					g--
				}
				gradB[k] += g
				row := gradW[k]
				for j, idx := range x.Indices {
					row[idx] += g * x.Values[j]
				}
			}
		}

		var penalty, maxGrad float64
		for k := 0; k < K; k++ {
			gradB[k] /= n
			maxGrad = math.Max(maxGrad, math.Abs(gradB[k]))
			for j, w := range m.Coef[k] {
				penalty += w * w
				gradW[k][j] = gradW[k][j]/n + lambda*w
				maxGrad = math.Max(maxGrad, math.Abs(gradW[k][j]))
			}
		}
		loss = loss/n + 0.5*lambda*penalty

		stats.Iterations = iter
		stats.Loss = loss
		if opts.Progress != nil {
			opts.Progress(iter, loss)
		}
		if maxGrad < opts.Tol {
			stats.Converged = true
			break
		}

		for k := 0; k < K; k++ {
			m.Intercept[k] -= opts.LearningRate * gradB[k]
			for j := range m.Coef[k] {
				m.Coef[k][j] -= opts.LearningRate * gradW[k][j]
			}
		}
	}

	return stats, nil
}

// PredictProba returns the class probabilities of x, aligned with Classes.
func (m *LogisticRegression) PredictProba(x SparseVector) []float64 {
	probs := make([]float64, len(m.Classes))
	m.scores(x, probs)
	softmaxInPlace(probs)
	return probs
}

func (m *LogisticRegression) scores(x SparseVector, out []float64) {
	for k := range out {
		out[k] = x.Dot(m.Coef[k]) + m.Intercept[k]
	}
}

func softmaxInPlace(z []float64) {
	maxZ := math.Inf(-1)
	for _, v := range z {
		maxZ = math.Max(maxZ, v)
	}
	var sum float64
	for i, v := range z {
		z[i] = math.Exp(v - maxZ)
		sum += z[i]
	}
	for i := range z {
		z[i] /= sum
	}
}

func withFitDefaults(opts FitOptions) FitOptions {
	if opts.C <= 0 {
		opts.C = DefaultC
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = DefaultMaxIter
	}
	if opts.Tol <= 0 {
		opts.Tol = DefaultTol
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = DefaultLearningRate
	}
	return opts
}

func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func uniqueSorted(values []string) []string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
