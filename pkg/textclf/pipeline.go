package textclf

// Example is one labelled row of the training corpus.
type Example struct {
	Text  string
	Label string
}

// Pipeline chains the TF-IDF transform and the classifier.
// A fitted Pipeline is read-only and safe for concurrent use.
type Pipeline struct {
	Vectorizer *Vectorizer         `json:"vectorizer"`
	Classifier *LogisticRegression `json:"classifier"`
}

// Fitted returns ErrNotFitted unless both stages carry learned parameters.
func (p *Pipeline) Fitted() error {
	if p == nil || p.Vectorizer == nil || p.Classifier == nil {
		return ErrNotFitted
	}
	if p.Vectorizer.Vocabulary == nil || p.Classifier.Coef == nil || len(p.Classifier.Classes) == 0 {
		return ErrNotFitted
	}
	return nil
}

// Labels returns a copy of the class labels in probability order.
func (p *Pipeline) Labels() []string {
	out := make([]string, len(p.Classifier.Classes))
	copy(out, p.Classifier.Classes)
	return out
}

// PredictProba returns the class probabilities of text, aligned with Labels.
func (p *Pipeline) PredictProba(text string) []float64 {
	return p.Classifier.PredictProba(p.Vectorizer.Transform(text))
}

// Predict returns the most probable label. Ties go to the label that sorts first.
func (p *Pipeline) Predict(text string) string {
	return p.Classifier.Classes[ArgMax(p.PredictProba(text))]
}

// TrainOptions configures Train.
type TrainOptions struct {
	NgramMin     int
	NgramMax     int
	MinDF        int
	MaxIter      int
	C            float64
	Tol          float64
	LearningRate float64
	Progress     func(iter int, loss float64)
}

// DefaultTrainOptions returns unigram+bigram TF-IDF with min_df 2 and a 2000 iteration cap.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		NgramMin:     DefaultNgramMin,
		NgramMax:     DefaultNgramMax,
		MinDF:        DefaultMinDF,
		MaxIter:      DefaultMaxIter,
		C:            DefaultC,
		Tol:          DefaultTol,
		LearningRate: DefaultLearningRate,
	}
}

// Train fits a Pipeline on examples.
func Train(examples []Example, opts TrainOptions) (*Pipeline, FitStats, error) {
	if len(examples) == 0 {
		return nil, FitStats{}, ErrEmptyCorpus
	}

	docs := make([]string, len(examples))
	labels := make([]string, len(examples))
	for i, ex := range examples {
		docs[i] = ex.Text
		labels[i] = ex.Label
	}
	if len(uniqueSorted(labels)) < 2 {
		return nil, FitStats{}, ErrSingleLabel
	}

	vec, err := NewVectorizer(opts.NgramMin, opts.NgramMax, opts.MinDF)
	if err != nil {
		return nil, FitStats{}, err
	}
	X, err := vec.FitTransform(docs)
	if err != nil {
		return nil, FitStats{}, err
	}

	clf := &LogisticRegression{}
	stats, err := clf.Fit(X, labels, vec.Features(), FitOptions{
		C:            opts.C,
		MaxIter:      opts.MaxIter,
		Tol:          opts.Tol,
		LearningRate: opts.LearningRate,
		Progress:     opts.Progress,
	})
	if err != nil {
		return nil, FitStats{}, err
	}

	return &Pipeline{Vectorizer: vec, Classifier: clf}, stats, nil
}

// ArgMax returns the index of the largest value, the first one on ties.
func ArgMax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
