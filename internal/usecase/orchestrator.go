// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/org-contributors/internal/domain"
	"github.com/naka-gawa/org-contributors/internal/gateway"
)

// Publisher receives the final ranked list. The orchestrator calls it
// exactly once per run, after ranking.
type Publisher interface {
	Publish(ranked []domain.Contributor)
}

// ListingError reports that the organization's repositories could not
// be enumerated. It is the only error that crosses the Run boundary;
// per-repository fetch failures are absorbed.
type ListingError struct {
	Org string
	Err error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("failed to list repositories for organization %s: %v", e.Org, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// Orchestrator drives the fetch-and-aggregate pipeline: it lists the
// organization's repositories, fans out one contributor fetch per
// repository, merges the results, and publishes the ranked list.
type Orchestrator struct {
	fetcher     gateway.Fetcher
	publisher   Publisher
	logger      *log.Logger
	concurrency int
}

// NewOrchestrator creates a new Orchestrator instance.
// concurrency bounds how many fetches run at once: 1 reproduces the
// sequential baseline in listing order, and values below 1 mean no limit.
func NewOrchestrator(fetcher gateway.Fetcher, publisher Publisher, logger *log.Logger, concurrency int) *Orchestrator {
	return &Orchestrator{
		fetcher:     fetcher,
		publisher:   publisher,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Run executes the whole pipeline for one organization. It returns the
// number of repositories listed (not the number successfully fetched)
// together with the ranked contributor list. The ranked output is
// identical for every concurrency setting: failed or empty repositories
// aside, the merge is commutative and the ranking depends only on the
// aggregated totals.
func (o *Orchestrator) Run(ctx context.Context, org string) (int, []domain.Contributor, error) {
	repos, err := o.fetcher.ListOrgRepositories(ctx, org)
	if err != nil {
		return 0, []domain.Contributor{}, &ListingError{Org: org, Err: err}
	}
	if len(repos) == 0 {
		o.logger.Printf("0 repositories found in %s organization.\n", org)
		ranked := []domain.Contributor{}
		o.publish(ranked)
		return 0, ranked, nil
	}
	o.logger.Printf("Found %d repositories in %s organization.\n", len(repos), org)

	// One slot per repository keeps the fan-in merge lock-free: each
	// task writes only its own index. A slot stays nil when its fetch
	// fails, which simply leaves that repository out of the aggregate.
	partials := make([]map[string]int, len(repos))

	limit := o.concurrency
	if limit < 1 {
		limit = -1
	}
	eg := new(errgroup.Group)
	eg.SetLimit(limit)
	for i, repo := range repos {
		i, repo := i, repo
		eg.Go(func() error {
			records, err := o.fetcher.FetchRepoContributors(ctx, org, repo.Name)
			if err != nil {
				o.logger.Printf("Error fetching contributors for repository %s: %v\n", repo.Name, err)
				return nil
			}
			o.logger.Printf("Found %d contributors in %s repository.\n", len(records), repo.Name)
			partials[i] = CountByLogin(records)
			return nil
		})
	}
	// Wait never returns an error here: fetch failures are absorbed
	// above, and a failure never cancels the sibling fetches.
	_ = eg.Wait()

	o.logger.Println("Aggregating results...")
	totals := make(map[string]int)
	for _, partial := range partials {
		MergeCounts(totals, partial)
	}

	ranked := Rank(totals)
	o.publish(ranked)
	return len(repos), ranked, nil
}

func (o *Orchestrator) publish(ranked []domain.Contributor) {
	if o.publisher != nil {
		o.publisher.Publish(ranked)
	}
}
