package textclf

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Artifact is the serialised, versioned output of a training run: the fitted pipeline plus
// enough metadata to check it on load. It is never modified after creation.
type Artifact struct {
	Format    string            `json:"format"`
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"created_at"`
	Labels    []string          `json:"labels"`
	Pipeline  *Pipeline         `json:"pipeline"`
	Stats     FitStats          `json:"stats"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// NewArtifact wraps a fitted pipeline.
func NewArtifact(p *Pipeline, stats FitStats, createdAt time.Time) *Artifact {
	return &Artifact{
		Format:    ArtifactFormat,
		Version:   ArtifactVersion,
		CreatedAt: createdAt.UTC(),
		Labels:    p.Labels(),
		Pipeline:  p,
		Stats:     stats,
	}
}

// Validate checks that the artifact is internally consistent.
func (a *Artifact) Validate() error {
	if a.Format != ArtifactFormat {
		return fmt.Errorf("%w: format %q", ErrCorruptArtifact, a.Format)
	}
	if a.Version != ArtifactVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, a.Version)
	}
	if err := a.Pipeline.Fitted(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArtifact, err)
	}

	vec, clf := a.Pipeline.Vectorizer, a.Pipeline.Classifier
	if vec.NgramMin < 1 || vec.NgramMax < vec.NgramMin {
		return fmt.Errorf("%w: ngram range %d-%d", ErrCorruptArtifact, vec.NgramMin, vec.NgramMax)
	}
	nFeatures := len(vec.IDF)
	if len(vec.Vocabulary) != nFeatures {
		return fmt.Errorf("%w: vocabulary has %d terms for %d weights", ErrCorruptArtifact, len(vec.Vocabulary), nFeatures)
	}
	seen := make([]bool, nFeatures)
	for term, idx := range vec.Vocabulary {
		if idx < 0 || idx >= nFeatures || seen[idx] {
			return fmt.Errorf("%w: bad index %d for term %q", ErrCorruptArtifact, idx, term)
		}
		seen[idx] = true
	}

	if len(clf.Classes) < 2 || !slices.Equal(clf.Classes, a.Labels) {
		return fmt.Errorf("%w: label set does not match classifier", ErrCorruptArtifact)
	}
	if len(clf.Coef) != len(clf.Classes) || len(clf.Intercept) != len(clf.Classes) {
		return fmt.Errorf("%w: classifier shape", ErrCorruptArtifact)
	}
	for k, row := range clf.Coef {
		if len(row) != nFeatures {
			return fmt.Errorf("%w: coefficient row %d has %d columns, want %d", ErrCorruptArtifact, k, len(row), nFeatures)
		}
	}

	return nil
}

// WriteArtifact encodes a as gzip-compressed JSON.
func WriteArtifact(w io.Writer, a *Artifact) error {
	zw := gzip.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(a); err != nil {
		zw.Close()
		return fmt.Errorf("textclf: encode artifact: %w", err)
	}
	return zw.Close()
}

// ReadArtifact decodes and validates an artifact written by WriteArtifact.
func ReadArtifact(r io.Reader) (*Artifact, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}
	defer zr.Close()

	var a Artifact
	if err := json.NewDecoder(zr).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveArtifact writes a to path through a temporary file in the same directory followed by
// a rename, so readers never observe a half-written artifact.
func SaveArtifact(path string, a *Artifact) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("textclf: create artifact dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("textclf: create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteArtifact(tmp, a); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("textclf: close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("textclf: install artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads and validates the artifact at path.
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textclf: open artifact: %w", err)
	}
	defer f.Close()
	return ReadArtifact(f)
}
