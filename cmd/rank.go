// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/org-contributors/internal/config"
	"github.com/naka-gawa/org-contributors/internal/domain"
	"github.com/naka-gawa/org-contributors/internal/gateway"
	"github.com/naka-gawa/org-contributors/internal/usecase"
)

// sinkFunc adapts a plain function to the usecase.Publisher interface.
type sinkFunc func(ranked []domain.Contributor)

func (f sinkFunc) Publish(ranked []domain.Contributor) { f(ranked) }

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Ranks contributors across all repositories of an organization",
	Long: `Fetches the contributor list of every repository owned by the given
GitHub organization, sums contribution counts per login, and prints the
result sorted by total contributions (ties broken by login).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if cfg.Token == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}

		// Flags override environment-derived settings when set.
		org, _ := cmd.Flags().GetString("org")
		if cmd.Flags().Changed("concurrency") {
			cfg.Concurrency, _ = cmd.Flags().GetInt("concurrency")
		}
		if cmd.Flags().Changed("output") {
			cfg.Output, _ = cmd.Flags().GetString("output")
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		summary, _ := cmd.Flags().GetBool("summary")

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}

		var renderErr error
		publisher := sinkFunc(func(ranked []domain.Contributor) {
			renderErr = writeRanked(os.Stdout, cfg.Output, ranked)
		})
		orchestrator := usecase.NewOrchestrator(githubGateway, publisher, logger, cfg.Concurrency)

		repoCount, ranked, err := orchestrator.Run(ctx, org)
		if err != nil {
			var listErr *usecase.ListingError
			if errors.As(err, &listErr) {
				fmt.Fprintln(os.Stderr, "Error making request to GitHub. Make sure token and organization name are correct.")
			}
			fmt.Fprintf(os.Stderr, "Failed to rank contributors: %v\n", err)
			os.Exit(1)
		}
		if repoCount == 0 {
			fmt.Fprintf(os.Stderr, "0 repositories found in %s organization, make sure your token is correct.\n", org)
		}
		if renderErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to write results: %v\n", renderErr)
			os.Exit(1)
		}
		if summary {
			writeSummary(os.Stderr, usecase.Summarize(ranked))
		}
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.PersistentFlags().StringP("org", "o", "", "Target GitHub organization name (required)")
	rankCmd.MarkPersistentFlagRequired("org")
	rankCmd.Flags().IntP("concurrency", "c", config.DefaultConcurrency, "Max fetches in flight (0 = unbounded, 1 = sequential)")
	rankCmd.Flags().String("output", config.DefaultOutput, "Output format: json or table")
	rankCmd.Flags().Bool("summary", false, "Print distribution statistics to stderr")
}
