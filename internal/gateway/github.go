// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/org-contributors/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	ListOrgRepositories(ctx context.Context, org string) ([]domain.Repository, error)
	FetchRepoContributors(ctx context.Context, org, repo string) ([]domain.ContributionRecord, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// orgRepositoriesQuery pages through an organization's repositories.
type orgRepositoriesQuery struct {
	Organization struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				Name string
			}
		} `graphql:"repositories(first: 100, after: $cursor)"`
	} `graphql:"organization(login: $org)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// ListOrgRepositories returns the name of every repository owned by the organization.
func (g *GitHubGateway) ListOrgRepositories(ctx context.Context, org string) ([]domain.Repository, error) {
	g.logger.Printf("Listing repositories in %s organization...\n", org)
	variables := map[string]interface{}{
		"org":    githubv4.String(org),
		"cursor": (*githubv4.String)(nil),
	}
	var repos []domain.Repository
	for {
		var q orgRepositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to list repositories for organization %s: %w", org, err)
		}
		for _, node := range q.Organization.Repositories.Nodes {
			repos = append(repos, domain.Repository{Name: node.Name})
		}
		if !q.Organization.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Organization.Repositories.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed listing repositories: %d found.\n", len(repos))
	return repos, nil
}

// FetchRepoContributors returns the contributor list of a single repository.
// An empty repository (HTTP 204 from GitHub) yields zero records, not an error.
func (g *GitHubGateway) FetchRepoContributors(ctx context.Context, org, repo string) ([]domain.ContributionRecord, error) {
	opts := &github.ListContributorsOptions{ListOptions: github.ListOptions{PerPage: 100}}
	records := make([]domain.ContributionRecord, 0)
	for {
		contributors, resp, err := g.restClient.Repositories.ListContributors(ctx, org, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contributors for repository %s: %w", repo, err)
		}
		if resp.StatusCode == http.StatusNoContent {
			break
		}
		for _, c := range contributors {
			records = append(records, domain.ContributionRecord{
				Login: c.GetLogin(),
				Count: c.GetContributions(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Printf("  Fetching next page of contributors for %s...\n", repo)
	}
	g.logger.Printf("Completed fetching contributors for %s repository.\n", repo)
	return records, nil
}
