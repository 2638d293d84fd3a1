package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	repo "nextact/internal/training/repository"
	"nextact/pkg/textclf"
)

// ListExamples returns the rows of the file in order. Rows with an empty label are skipped.
func (r *implRepository) ListExamples(ctx context.Context, opt repo.ListExamplesOptions) ([]textclf.Example, error) {
	opt = opt.WithDefaults()

	f, err := os.Open(r.path)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExamples"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToOpen, err)
	}
	defer f.Close()

	reader := stdcsv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		r.l.Errorf(ctx, "%s: read header: %v", r.dsn("ListExamples"), err)
		return nil, fmt.Errorf("%w: header: %v", repo.ErrFailedToList, err)
	}
	textIdx, labelIdx := columnIndex(header, opt.TextColumn), columnIndex(header, opt.LabelColumn)
	if textIdx < 0 {
		return nil, fmt.Errorf("%w: %q", repo.ErrColumnNotFound, opt.TextColumn)
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("%w: %q", repo.ErrColumnNotFound, opt.LabelColumn)
	}

	var (
		out     []textclf.Example
		skipped int
	)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: line %d: %v", r.dsn("ListExamples"), line, err)
			return nil, fmt.Errorf("%w: line %d: %v", repo.ErrFailedToList, line, err)
		}

		if textIdx >= len(record) || labelIdx >= len(record) {
			skipped++
			continue
		}
		label := strings.TrimSpace(record[labelIdx])
		if label == "" {
			skipped++
			continue
		}
		out = append(out, textclf.Example{Text: record[textIdx], Label: label})
	}

	if skipped > 0 {
		r.l.Warnf(ctx, "%s: skipped %d rows without a label", r.dsn("ListExamples"), skipped)
	}
	return out, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		// Excel likes to prepend a BOM to the first column.
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
