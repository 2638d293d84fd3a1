package usecase

import (
	"context"
	"fmt"
	"strings"

	"nextact/internal/nextact"
	"nextact/pkg/gemini"
)

// Chat forwards a question about a task to the assistant. When no due date is given, the
// deadline is resolved from the task title and description.
func (uc *implUseCase) Chat(ctx context.Context, input nextact.ChatInput) (nextact.ChatOutput, error) {
	if uc.assistant == nil {
		return nextact.ChatOutput{}, nextact.ErrAssistantUnavailable
	}
	if strings.TrimSpace(input.Message) == "" {
		return nextact.ChatOutput{}, nextact.ErrEmptyMessage
	}

	dueDate := strings.TrimSpace(input.DueDate)
	if dueDate == "" {
		res := uc.resolver.Resolve(input.TaskTitle+" "+input.TaskDescription, uc.today())
		if res.Found() {
			dueDate = res.Date.String()
		}
	}

	resp, err := uc.assistant.GenerateContent(ctx, gemini.UserText(uc.buildChatPrompt(input, dueDate)))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat GenerateContent: %v", err)
		return nextact.ChatOutput{}, fmt.Errorf("%w: %v", nextact.ErrAssistantFailed, err)
	}

	reply, err := resp.Text()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat Text: %v", err)
		return nextact.ChatOutput{}, fmt.Errorf("%w: %v", nextact.ErrAssistantFailed, err)
	}

	return nextact.ChatOutput{Reply: reply, Model: uc.assistant.Model()}, nil
}
