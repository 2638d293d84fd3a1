package repository

const (
	DefaultTextColumn  = "text"
	DefaultLabelColumn = "labels"
	DefaultTable       = "examples"
)

// ListExamplesOptions selects where the text and label of each row live.
// Empty fields fall back to the defaults above. Table is ignored by file based sources.
type ListExamplesOptions struct {
	Table       string
	TextColumn  string
	LabelColumn string
}

// WithDefaults fills in empty fields.
func (o ListExamplesOptions) WithDefaults() ListExamplesOptions {
	if o.Table == "" {
		o.Table = DefaultTable
	}
	if o.TextColumn == "" {
		o.TextColumn = DefaultTextColumn
	}
	if o.LabelColumn == "" {
		o.LabelColumn = DefaultLabelColumn
	}
	return o
}
