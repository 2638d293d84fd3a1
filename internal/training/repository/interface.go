package repository

import (
	"context"

	"nextact/pkg/textclf"
)

// CorpusRepository reads labelled training rows. Rows come back in a stable order so the
// same source always yields the same split.
type CorpusRepository interface {
	ListExamples(ctx context.Context, opt ListExamplesOptions) ([]textclf.Example, error)
}
