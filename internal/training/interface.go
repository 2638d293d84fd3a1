package training

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Train fits a model on the configured corpus and writes the artifact to disk.
	Train(ctx context.Context, input TrainInput) (TrainOutput, error)
}
