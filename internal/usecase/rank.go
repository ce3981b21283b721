package usecase

import (
	"sort"

	"github.com/naka-gawa/org-contributors/internal/domain"
)

// Rank converts aggregated totals into the final ordering: contributions
// descending, login ascending on ties. The result depends only on the
// map's contents, never on its insertion or iteration order, which is
// what keeps concurrent runs byte-identical to the sequential baseline.
func Rank(totals map[string]int) []domain.Contributor {
	ranked := make([]domain.Contributor, 0, len(totals))
	for login, total := range totals {
		ranked = append(ranked, domain.Contributor{Login: login, Contributions: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Contributions != ranked[j].Contributions {
			return ranked[i].Contributions > ranked[j].Contributions
		}
		return ranked[i].Login < ranked[j].Login
	})
	return ranked
}
