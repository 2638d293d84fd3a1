package training

import "errors"

var (
	ErrEmptyCorpus        = errors.New("corpus has no labelled examples")
	ErrOutputPathRequired = errors.New("artifact output path is required")
	ErrTrainFailed        = errors.New("model training failed")
)
