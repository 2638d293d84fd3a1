package nextact

import (
	"context"

	"nextact/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Infer classifies text and extracts its deadline.
	Infer(ctx context.Context, input InferInput) (model.TaskIntent, error)
	// Chat asks the assistant about a task.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// ModelInfo describes the loaded model.
	ModelInfo(ctx context.Context) (model.ModelInfo, error)
}
