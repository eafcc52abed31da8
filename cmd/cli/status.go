package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/pr-sentinel/internal/wire"
)

var (
	statusRepo string
	statusPR   int
	outputJSON bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest review result for a pull request.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		app, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer cleanup()

		review, err := app.Store().GetLatestReviewForPR(ctx, statusRepo, statusPR)
		if err != nil {
			return fmt.Errorf("no review found for %s#%d: %w", statusRepo, statusPR, err)
		}

		if outputJSON {
			out := map[string]any{
				"repository": review.RepoFullName,
				"pr_number":  review.PRNumber,
				"head_sha":   review.HeadSHA,
				"errors":     review.ErrorCount,
				"warnings":   review.WarningCount,
				"info":       review.InfoCount,
				"created_at": review.CreatedAt,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Repository:\t%s\n", review.RepoFullName)
		fmt.Fprintf(w, "Pull request:\t#%d\n", review.PRNumber)
		fmt.Fprintf(w, "Revision:\t%s\n", review.HeadSHA)
		fmt.Fprintf(w, "Errors:\t%d\n", review.ErrorCount)
		fmt.Fprintf(w, "Warnings:\t%d\n", review.WarningCount)
		fmt.Fprintf(w, "Info:\t%d\n", review.InfoCount)
		fmt.Fprintf(w, "Reviewed at:\t%s\n", review.CreatedAt.Format("2006-01-02 15:04:05"))
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	statusCmd.Flags().StringVar(&statusRepo, "repo", "", "Repository in owner/name form (required)")
	statusCmd.Flags().IntVar(&statusPR, "pr", 0, "Pull request number (required)")
	statusCmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	_ = statusCmd.MarkFlagRequired("repo")
	_ = statusCmd.MarkFlagRequired("pr")
	rootCmd.AddCommand(statusCmd)
}
