package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "nextact/internal/training/repository"
	"nextact/pkg/textclf"
)

// ListExamples returns the labelled rows of the table in rowid order.
func (r *implRepository) ListExamples(ctx context.Context, opt repo.ListExamplesOptions) ([]textclf.Example, error) {
	query, err := r.buildListQuery(opt.WithDefaults())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExamples"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var out []textclf.Example
	for rows.Next() {
		var text sql.NullString
		var label string
		if err := rows.Scan(&text, &label); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListExamples"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		out = append(out, textclf.Example{Text: text.String, Label: strings.TrimSpace(label)})
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListExamples"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return out, nil
}
