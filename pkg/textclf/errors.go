package textclf

import "errors"

var (
	ErrEmptyCorpus        = errors.New("textclf: corpus is empty")
	ErrSingleLabel        = errors.New("textclf: at least two distinct labels are required")
	ErrEmptyVocabulary    = errors.New("textclf: no term reaches the minimum document frequency")
	ErrInvalidTestSize    = errors.New("textclf: test size must be in [0, 1)")
	ErrInvalidNgramRange  = errors.New("textclf: invalid n-gram range")
	ErrLengthMismatch     = errors.New("textclf: samples and labels differ in length")
	ErrNotFitted          = errors.New("textclf: model is not fitted")
	ErrCorruptArtifact    = errors.New("textclf: corrupt model artifact")
	ErrUnsupportedVersion = errors.New("textclf: unsupported model artifact version")
)
