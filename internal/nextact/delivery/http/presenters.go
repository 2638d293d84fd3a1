package http

import (
	"nextact/internal/model"
	"nextact/internal/nextact"
	"nextact/pkg/datemath"
	"nextact/pkg/response"
)

// --- Request DTOs ---

type classifyReq struct {
	Text string `json:"text"`
}

func (r classifyReq) toInput() nextact.InferInput {
	return nextact.InferInput{Text: r.Text}
}

// ---

type chatReq struct {
	TaskTitle       string `json:"task_title"       binding:"required,max=500"`
	TaskDescription string `json:"task_description" binding:"max=5000"`
	DueDate         string `json:"due_date"         binding:"max=64"`
	Message         string `json:"message"          binding:"max=5000"`
}

func (r chatReq) toInput() nextact.ChatInput {
	return nextact.ChatInput{
		TaskTitle:       r.TaskTitle,
		TaskDescription: r.TaskDescription,
		DueDate:         r.DueDate,
		Message:         r.Message,
	}
}

// --- Response DTOs ---

type classifyResp struct {
	Text          string             `json:"text"`
	Category      string             `json:"category"`
	Confidence    float64            `json:"confidence"`
	Deadline      *datemath.Date     `json:"deadline" swaggertype:"string" example:"2024-06-21"`
	DeadlineRule  string             `json:"deadline_rule,omitempty"`
	Probabilities map[string]float64 `json:"probabilities"`
}

func (h *handler) newClassifyResp(intent model.TaskIntent) classifyResp {
	return classifyResp{
		Text:          intent.Text,
		Category:      intent.Category,
		Confidence:    intent.Confidence,
		Deadline:      intent.Deadline,
		DeadlineRule:  intent.DeadlineRule,
		Probabilities: intent.Distribution,
	}
}

// ---

type chatResp struct {
	Reply   string `json:"reply"`
	Model   string `json:"model"`
	Success bool   `json:"success"`
}

func (h *handler) newChatResp(out nextact.ChatOutput) chatResp {
	return chatResp{
		Reply:   out.Reply,
		Model:   out.Model,
		Success: true,
	}
}

// ---

type modelsResp struct {
	Format         string            `json:"format"`
	Version        int               `json:"version"`
	CreatedAt      response.DateTime `json:"created_at" swaggertype:"string" example:"2024-06-10 08:00:00"`
	Labels         []string          `json:"labels"`
	VocabularySize int               `json:"vocabulary_size"`
	NgramRange     [2]int            `json:"ngram_range"`
	Iterations     int               `json:"iterations"`
	Converged      bool              `json:"converged"`
	AssistantModel string            `json:"assistant_model,omitempty"`
}

func (h *handler) newModelsResp(info model.ModelInfo) modelsResp {
	return modelsResp{
		Format:         info.Format,
		Version:        info.Version,
		CreatedAt:      response.DateTime(info.CreatedAt),
		Labels:         info.Labels,
		VocabularySize: info.VocabularySize,
		NgramRange:     [2]int{info.NgramMin, info.NgramMax},
		Iterations:     info.Iterations,
		Converged:      info.Converged,
		AssistantModel: info.AssistantModel,
	}
}
