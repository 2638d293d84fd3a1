package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"nextact/internal/training/repository"
	"nextact/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed CorpusRepository.
func New(db *sql.DB, l log.Logger) repository.CorpusRepository {
	if db == nil {
		panic("training/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens the SQLite database at path. The corpus is only read, so a single connection
// is enough.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("training/repository/sqlite.%s", method)
}
