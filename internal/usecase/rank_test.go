package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/org-contributors/internal/domain"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		name     string
		totals   map[string]int
		expected []domain.Contributor
	}{
		{
			name:     "empty mapping yields empty list",
			totals:   map[string]int{},
			expected: []domain.Contributor{},
		},
		{
			name:   "orders by contributions descending",
			totals: map[string]int{"alice": 3, "bob": 10, "carol": 7},
			expected: []domain.Contributor{
				{Login: "bob", Contributions: 10},
				{Login: "carol", Contributions: 7},
				{Login: "alice", Contributions: 3},
			},
		},
		{
			name:   "ties break by login ascending",
			totals: map[string]int{"mallory": 4, "bob": 4, "alice": 4, "zed": 9},
			expected: []domain.Contributor{
				{Login: "zed", Contributions: 9},
				{Login: "alice", Contributions: 4},
				{Login: "bob", Contributions: 4},
				{Login: "mallory", Contributions: 4},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Rank(tc.totals))
		})
	}
}

// TestRank_Idempotent ranks the same mapping twice and compares: a pure
// function of the map contents must not depend on iteration order.
func TestRank_Idempotent(t *testing.T) {
	totals := map[string]int{
		"alice": 17, "bob": 17, "carol": 2, "dave": 90, "erin": 2,
	}
	first := Rank(totals)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(totals))
	}

	// Rebuilding the mapping from the ranked output and ranking again
	// reproduces the same sequence.
	rebuilt := make(map[string]int, len(first))
	for _, c := range first {
		rebuilt[c.Login] = c.Contributions
	}
	assert.Equal(t, first, Rank(rebuilt))
}
