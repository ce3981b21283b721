// Package domain contains the core data structures and domain logic for the application.
package domain

// Repository identifies one repository within an organization.
// Created by the repository listing and never mutated afterwards.
type Repository struct {
	Name string `json:"name"`
}

// ContributionRecord is one contributor's commit count for a single
// repository, as returned by the contributors endpoint. Records are
// consumed immediately by the aggregation step and not kept around.
type ContributionRecord struct {
	Login string `json:"login"`
	Count int    `json:"contributions"`
}

// Contributor holds the aggregated contribution count for one login
// across every repository of the organization. Login is the sole
// identity key, compared case-sensitively.
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// Summary describes the distribution of aggregated contribution counts.
type Summary struct {
	Contributors int     `json:"contributors"`
	Total        int     `json:"total_contributions"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	P90          float64 `json:"p90"`
	Max          int     `json:"max"`
}
