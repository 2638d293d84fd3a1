package classifier

import (
	"context"

	"nextact/internal/model"
)

//go:generate mockery --name Classifier
type Classifier interface {
	// Classify assigns a category to text.
	Classify(ctx context.Context, text string) (model.Classification, error)
	// Labels returns the trained label set in sorted order, nil when no model is loaded.
	Labels() []string
	// Info describes the loaded artifact.
	Info() model.ModelInfo
}
