package csv

import (
	"fmt"

	"nextact/internal/training/repository"
	"nextact/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

// New creates a CorpusRepository over a CSV file with a header row.
func New(path string, l log.Logger) repository.CorpusRepository {
	if path == "" {
		panic("training/repository/csv: path is required")
	}
	return &implRepository{path: path, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("training/repository/csv.%s", method)
}
