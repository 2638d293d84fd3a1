package usecase

import (
	"context"

	"nextact/internal/model"
	"nextact/internal/nextact"
)

// Infer runs the classifier and the deadline resolver over the same text. Classification is
// mandatory; a missing deadline is not an error.
func (uc *implUseCase) Infer(ctx context.Context, input nextact.InferInput) (model.TaskIntent, error) {
	cls, err := uc.clf.Classify(ctx, input.Text)
	if err != nil {
		return model.TaskIntent{}, err
	}

	intent := model.TaskIntent{
		Text:         input.Text,
		Category:     cls.Category,
		Confidence:   cls.Confidence,
		Distribution: cls.Distribution,
	}

	res := uc.resolver.Resolve(input.Text, uc.today())
	if res.Failed() {
		uc.l.Warnf(ctx, "uc.Infer Resolve: %v", res.Err)
		return model.TaskIntent{}, nextact.ErrInvalidInput
	}
	if res.ScopeConflict {
		uc.l.Warnf(ctx, "uc.Infer: text mentions both this week and next week, using %s", res.Scope)
	}
	if res.Found() {
		deadline := res.Date
		intent.Deadline = &deadline
		intent.DeadlineRule = res.Rule
	}

	return intent, nil
}
