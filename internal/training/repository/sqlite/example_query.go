package sqlite

import (
	"fmt"
	"regexp"

	repo "nextact/internal/training/repository"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// buildListQuery builds the SELECT for ListExamples. Identifiers cannot be bound as
// parameters, so they are checked against a strict pattern before being quoted in.
func (r *implRepository) buildListQuery(opt repo.ListExamplesOptions) (string, error) {
	for _, id := range []string{opt.Table, opt.TextColumn, opt.LabelColumn} {
		if !identifierRe.MatchString(id) {
			return "", fmt.Errorf("%w: %q", repo.ErrInvalidIdentifier, id)
		}
	}
	return fmt.Sprintf(
		`SELECT "%s", "%s" FROM "%s" WHERE "%s" IS NOT NULL AND TRIM("%s") <> '' ORDER BY rowid`,
		opt.TextColumn, opt.LabelColumn, opt.Table, opt.LabelColumn, opt.LabelColumn,
	), nil
}
