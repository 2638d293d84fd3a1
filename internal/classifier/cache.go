package classifier

import (
	"context"
	"maps"

	lru "github.com/hashicorp/golang-lru/v2"

	"nextact/internal/model"
)

const DefaultCacheSize = 1024

type cachedClassifier struct {
	inner Classifier
	cache *lru.Cache[string, model.Classification]
}

// NewCached memoises inner by exact text. Classification of a loaded artifact is a pure
// function of the text, so hits are indistinguishable from misses. Errors are never cached.
func NewCached(inner Classifier, size int) (Classifier, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, model.Classification](size)
	if err != nil {
		return nil, err
	}
	return &cachedClassifier{inner: inner, cache: cache}, nil
}

func (c *cachedClassifier) Classify(ctx context.Context, text string) (model.Classification, error) {
	if hit, ok := c.cache.Get(text); ok {
		return cloneClassification(hit), nil
	}

	res, err := c.inner.Classify(ctx, text)
	if err != nil {
		return model.Classification{}, err
	}
	c.cache.Add(text, cloneClassification(res))
	return res, nil
}

func (c *cachedClassifier) Labels() []string {
	return c.inner.Labels()
}

func (c *cachedClassifier) Info() model.ModelInfo {
	return c.inner.Info()
}

// cloneClassification keeps callers from mutating the cached distribution.
func cloneClassification(in model.Classification) model.Classification {
	in.Distribution = maps.Clone(in.Distribution)
	return in
}
