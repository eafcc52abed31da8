package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/pr-sentinel/internal/wire"
)

var (
	reviewRepo string
	reviewPR   int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Queue an AI review for a pull request.",
	Long: `Queues an analysis job for a pull request of a registered repository,
bypassing the webhook flow. The command waits for the queue to drain,
so the review is finished when it returns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		app, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer cleanup()

		prID, err := app.EnqueueManualReview(ctx, reviewRepo, reviewPR)
		if err != nil {
			return err
		}
		fmt.Printf("Queued review for %s#%d (pull request record %d)\n", reviewRepo, reviewPR, prID)

		// Stop drains the queue, so the job runs to completion before exit.
		if err := app.Stop(); err != nil {
			return err
		}

		pr, err := app.Store().GetPullRequest(ctx, prID)
		if err != nil {
			return fmt.Errorf("failed to read review result: %w", err)
		}
		fmt.Printf("Review finished with status %q, %d comment(s) posted\n", pr.Status, pr.CommentCount)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	reviewCmd.Flags().StringVar(&reviewRepo, "repo", "", "Repository in owner/name form (required)")
	reviewCmd.Flags().IntVar(&reviewPR, "pr", 0, "Pull request number (required)")
	_ = reviewCmd.MarkFlagRequired("repo")
	_ = reviewCmd.MarkFlagRequired("pr")
	rootCmd.AddCommand(reviewCmd)
}
