package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/org-contributors/internal/domain"
)

// Summarize computes distribution statistics over the ranked totals.
// An empty list yields the zero Summary.
func Summarize(ranked []domain.Contributor) domain.Summary {
	if len(ranked) == 0 {
		return domain.Summary{}
	}

	values := make(stats.Float64Data, 0, len(ranked))
	total := 0
	max := 0
	for _, c := range ranked {
		values = append(values, float64(c.Contributions))
		total += c.Contributions
		if c.Contributions > max {
			max = c.Contributions
		}
	}

	// The errors here only fire on empty input, which is excluded above.
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	p90, _ := stats.Percentile(values, 90)

	return domain.Summary{
		Contributors: len(ranked),
		Total:        total,
		Mean:         mean,
		Median:       median,
		P90:          p90,
		Max:          max,
	}
}
