package training

import (
	"nextact/internal/training/repository"
	"nextact/pkg/textclf"
)

// --- UseCase Inputs ---

type TrainInput struct {
	Corpus     repository.ListExamplesOptions
	OutputPath string

	// Zero values fall back to the textclf defaults.
	TestSize float64
	Seed     uint64
	MinDF    int
	MaxIter  int

	// Metadata is stored verbatim in the artifact.
	Metadata map[string]string
	// Progress is called after every solver iteration.
	Progress func(iter int, loss float64)
}

// --- UseCase Outputs ---

type TrainOutput struct {
	Report       textclf.Report
	Stats        textclf.FitStats
	Labels       []string
	TrainSize    int
	TestSize     int
	ArtifactPath string
}
