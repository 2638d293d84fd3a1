package model

import (
	"time"

	"nextact/pkg/datemath"
)

// Classification is the category assigned to a piece of task text.
// Distribution holds one entry per trained label, as a percentage rounded to two decimals.
type Classification struct {
	Category     string
	Confidence   float64
	Distribution map[string]float64
}

// TaskIntent is what the engine derives from a single task text.
type TaskIntent struct {
	Text         string
	Category     string
	Confidence   float64
	Distribution map[string]float64
	Deadline     *datemath.Date // nil when no deadline phrase was found
	DeadlineRule string
}

// ModelInfo describes the loaded model artifact.
type ModelInfo struct {
	Loaded         bool
	Format         string
	Version        int
	CreatedAt      time.Time
	Labels         []string
	VocabularySize int
	NgramMin       int
	NgramMax       int
	Iterations     int
	Converged      bool
	AssistantModel string
}
