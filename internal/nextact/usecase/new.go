package usecase

import (
	"time"

	"nextact/internal/classifier"
	"nextact/pkg/datemath"
	"nextact/pkg/gemini"
	"nextact/pkg/log"
)

// implUseCase is the private implementation of nextact.UseCase.
type implUseCase struct {
	l         log.Logger
	clf       classifier.Classifier
	resolver  *datemath.Resolver
	assistant gemini.IGemini
	now       func() time.Time
}

// New creates the engine. assistant may be nil, in which case Chat reports
// ErrAssistantUnavailable.
func New(l log.Logger, clf classifier.Classifier, assistant gemini.IGemini) *implUseCase {
	return &implUseCase{
		l:         l,
		clf:       clf,
		resolver:  datemath.NewResolver(),
		assistant: assistant,
		now:       time.Now,
	}
}

// SetClock overrides the source of "today".
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *implUseCase) today() datemath.Date {
	return datemath.DateOf(uc.now())
}
