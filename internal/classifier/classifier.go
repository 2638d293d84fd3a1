package classifier

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"nextact/internal/model"
	"nextact/pkg/textclf"
)

type implClassifier struct {
	artifact *textclf.Artifact
}

// New wraps a loaded artifact. A nil artifact gives a classifier that fails every call with
// ErrModelUnavailable.
func New(artifact *textclf.Artifact) Classifier {
	return &implClassifier{artifact: artifact}
}

func (c *implClassifier) Classify(ctx context.Context, text string) (model.Classification, error) {
	if c.artifact == nil {
		return model.Classification{}, ErrModelUnavailable
	}
	if strings.TrimSpace(text) == "" || !utf8.ValidString(text) {
		return model.Classification{}, ErrInvalidInput
	}

	labels := c.artifact.Pipeline.Labels()
	probs := c.artifact.Pipeline.PredictProba(text)

	dist := make(map[string]float64, len(labels))
	for i, label := range labels {
		dist[label] = percent(probs[i])
	}

	best := textclf.ArgMax(probs)
	return model.Classification{
		Category:     labels[best],
		Confidence:   dist[labels[best]],
		Distribution: dist,
	}, nil
}

func (c *implClassifier) Labels() []string {
	if c.artifact == nil {
		return nil
	}
	return c.artifact.Pipeline.Labels()
}

func (c *implClassifier) Info() model.ModelInfo {
	a := c.artifact
	if a == nil {
		return model.ModelInfo{}
	}
	return model.ModelInfo{
		Loaded:         true,
		Format:         a.Format,
		Version:        a.Version,
		CreatedAt:      a.CreatedAt,
		Labels:         a.Pipeline.Labels(),
		VocabularySize: a.Pipeline.Vectorizer.Features(),
		NgramMin:       a.Pipeline.Vectorizer.NgramMin,
		NgramMax:       a.Pipeline.Vectorizer.NgramMax,
		Iterations:     a.Stats.Iterations,
		Converged:      a.Stats.Converged,
	}
}

// percent converts a probability to a percentage with two decimals.
func percent(p float64) float64 {
	return math.Round(p*10000) / 100
}
