package nextact

// --- UseCase Inputs ---

type InferInput struct {
	Text string
}

type ChatInput struct {
	TaskTitle       string
	TaskDescription string
	DueDate         string
	Message         string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply string
	Model string
}
