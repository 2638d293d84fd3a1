package textclf

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// ClassMetrics holds the held-out scores of one label.
type ClassMetrics struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// AverageMetrics holds averaged precision, recall and F1.
type AverageMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Report is the evaluation of a pipeline on a held-out set. It is informational only.
type Report struct {
	Accuracy    float64        `json:"accuracy"`
	Support     int            `json:"support"`
	Classes     []ClassMetrics `json:"classes"`
	MacroAvg    AverageMetrics `json:"macro_avg"`
	WeightedAvg AverageMetrics `json:"weighted_avg"`
}

// Evaluate scores p on test. Labels come from the pipeline, so a label absent from the
// held-out set is reported with zero support.
func Evaluate(p *Pipeline, test []Example) Report {
	labels := p.Labels()
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	tp := make([]int, len(labels))
	predicted := make([]int, len(labels))
	actual := make([]int, len(labels))

	var correct int
	for _, ex := range test {
		pred := index[p.Predict(ex.Text)]
		predicted[pred]++
		if k, ok := index[ex.Label]; ok {
			actual[k]++
			if k == pred {
				tp[k]++
				correct++
			}
		}
	}

	r := Report{Support: len(test), Classes: make([]ClassMetrics, len(labels))}
	if len(test) > 0 {
		r.Accuracy = float64(correct) / float64(len(test))
	}

	for k, label := range labels {
		m := ClassMetrics{
			Label:     label,
			Precision: ratio(tp[k], predicted[k]),
			Recall:    ratio(tp[k], actual[k]),
			Support:   actual[k],
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.Classes[k] = m

		r.MacroAvg.Precision += m.Precision / float64(len(labels))
		r.MacroAvg.Recall += m.Recall / float64(len(labels))
		r.MacroAvg.F1 += m.F1 / float64(len(labels))
		if len(test) > 0 {
			w := float64(m.Support) / float64(len(test))
			r.WeightedAvg.Precision += m.Precision * w
			r.WeightedAvg.Recall += m.Recall * w
			r.WeightedAvg.F1 += m.F1 * w
		}
	}

	return r
}

// String renders the report as a classification table.
func (r Report) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "\tprecision\trecall\tf1-score\tsupport\t")
	for _, c := range r.Classes {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%d\t\n", c.Label, c.Precision, c.Recall, c.F1, c.Support)
	}
	fmt.Fprintln(w, "\t\t\t\t\t")
	fmt.Fprintf(w, "accuracy\t\t\t%.2f\t%d\t\n", r.Accuracy, r.Support)
	fmt.Fprintf(w, "macro avg\t%.2f\t%.2f\t%.2f\t%d\t\n", r.MacroAvg.Precision, r.MacroAvg.Recall, r.MacroAvg.F1, r.Support)
	fmt.Fprintf(w, "weighted avg\t%.2f\t%.2f\t%.2f\t%d\t\n", r.WeightedAvg.Precision, r.WeightedAvg.Recall, r.WeightedAvg.F1, r.Support)
	w.Flush()
	return b.String()
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
