package usecase

import (
	"time"

	"nextact/internal/training/repository"
	"nextact/pkg/log"
)

// implUseCase is the private implementation of training.UseCase.
type implUseCase struct {
	repo repository.CorpusRepository
	l    log.Logger
	now  func() time.Time
}

// New creates a new training UseCase implementation.
func New(repo repository.CorpusRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}

// SetClock overrides the time source stamped into artifacts.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
