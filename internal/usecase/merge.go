package usecase

import "github.com/naka-gawa/org-contributors/internal/domain"

// CountByLogin aggregates raw contribution records into a count per
// login. A login appearing more than once in the same record list still
// sums; counts are never capped or subtracted.
func CountByLogin(records []domain.ContributionRecord) map[string]int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Login] += r.Count
	}
	return counts
}

// MergeCounts folds partial into dst, summing counts per login.
// The operation is commutative and associative, so partial aggregates
// computed independently may be combined in any order or grouping and
// still produce the same totals.
func MergeCounts(dst, partial map[string]int) {
	for login, count := range partial {
		dst[login] += count
	}
}
