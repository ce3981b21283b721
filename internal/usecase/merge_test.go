package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/org-contributors/internal/domain"
)

func TestCountByLogin(t *testing.T) {
	testCases := []struct {
		name     string
		records  []domain.ContributionRecord
		expected map[string]int
	}{
		{
			name:     "empty input yields empty counts",
			records:  []domain.ContributionRecord{},
			expected: map[string]int{},
		},
		{
			name: "distinct logins keep their own counts",
			records: []domain.ContributionRecord{
				{Login: "alice", Count: 5},
				{Login: "bob", Count: 2},
			},
			expected: map[string]int{"alice": 5, "bob": 2},
		},
		{
			name: "duplicate logins sum, zero counts are kept",
			records: []domain.ContributionRecord{
				{Login: "alice", Count: 5},
				{Login: "alice", Count: 12},
				{Login: "bob", Count: 0},
			},
			expected: map[string]int{"alice": 17, "bob": 0},
		},
		{
			name: "login identity is case-sensitive",
			records: []domain.ContributionRecord{
				{Login: "Alice", Count: 1},
				{Login: "alice", Count: 2},
			},
			expected: map[string]int{"Alice": 1, "alice": 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CountByLogin(tc.records))
		})
	}
}

func TestMergeCounts(t *testing.T) {
	dst := map[string]int{"alice": 5, "bob": 2}
	MergeCounts(dst, map[string]int{"alice": 12, "carol": 3})
	assert.Equal(t, map[string]int{"alice": 17, "bob": 2, "carol": 3}, dst)

	// Merging an empty partial is the identity.
	MergeCounts(dst, map[string]int{})
	MergeCounts(dst, nil)
	assert.Equal(t, map[string]int{"alice": 17, "bob": 2, "carol": 3}, dst)
}

// TestMergeCounts_Commutative merges randomized permutations and
// groupings of the same records and requires identical totals, the
// property the concurrent fan-in depends on.
func TestMergeCounts_Commutative(t *testing.T) {
	records := []domain.ContributionRecord{
		{Login: "alice", Count: 5},
		{Login: "bob", Count: 3},
		{Login: "alice", Count: 0},
		{Login: "carol", Count: 9},
		{Login: "bob", Count: 7},
		{Login: "alice", Count: 12},
		{Login: "dave", Count: 1},
	}
	expected := CountByLogin(records)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		shuffled := make([]domain.ContributionRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		// Split the shuffle into random-size partial aggregates and
		// fold them together, as concurrently completing fetches would.
		totals := map[string]int{}
		for start := 0; start < len(shuffled); {
			end := start + 1 + rng.Intn(len(shuffled)-start)
			MergeCounts(totals, CountByLogin(shuffled[start:end]))
			start = end
		}

		assert.Equal(t, expected, totals, "trial %d", trial)
	}
}
