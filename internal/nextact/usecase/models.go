package usecase

import (
	"context"

	"nextact/internal/model"
	"nextact/internal/nextact"
)

// ModelInfo reports the loaded artifact and the assistant model, if any.
func (uc *implUseCase) ModelInfo(ctx context.Context) (model.ModelInfo, error) {
	info := uc.clf.Info()
	if !info.Loaded {
		return model.ModelInfo{}, nextact.ErrModelUnavailable
	}
	if uc.assistant != nil {
		info.AssistantModel = uc.assistant.Model()
	}
	return info, nil
}
