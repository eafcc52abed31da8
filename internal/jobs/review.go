// Package jobs defines background tasks such as automated code reviews.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/pr-sentinel/internal/analyzer"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// ReviewJob executes one analysis job: it tracks the pull request's status
// around the orchestration and persists the review summary on success.
type ReviewJob struct {
	store        storage.Store
	orchestrator *analyzer.Orchestrator
	logger       *slog.Logger
}

// NewReviewJob creates a new ReviewJob.
func NewReviewJob(store storage.Store, orchestrator *analyzer.Orchestrator, logger *slog.Logger) core.Job {
	if store == nil {
		panic("store cannot be nil")
	}
	if orchestrator == nil {
		panic("orchestrator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReviewJob{store: store, orchestrator: orchestrator, logger: logger}
}

// Run performs one delivery attempt. Each attempt that reaches a worker
// re-enters analyzing with a fresh start timestamp; a failed attempt marks
// the pull request failed and returns the error so the queue can retry.
func (j *ReviewJob) Run(ctx context.Context, job *core.AnalysisJob) error {
	if err := j.validateInputs(job); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}

	log := j.logger.With("job", job.ID, "repo", job.Owner+"/"+job.Repo, "pr", job.PRNumber)

	active, err := j.store.IsActiveJob(ctx, job.PRID, job.ID)
	if err != nil {
		return fmt.Errorf("failed to check job lease: %w", err)
	}
	if !active {
		log.Info("job superseded by a newer push, skipping")
		return nil
	}

	pr, err := j.store.GetPullRequest(ctx, job.PRID)
	if err != nil {
		return fmt.Errorf("failed to load pull request %d: %w", job.PRID, err)
	}

	if err := j.store.MarkAnalyzing(ctx, job.PRID); err != nil {
		return fmt.Errorf("failed to mark pull request analyzing: %w", err)
	}
	log.Info("starting analysis", "style", pr.ReviewStyle)

	result, err := j.orchestrator.Analyze(ctx, job, pr.ReviewStyle)
	if err != nil {
		if errors.Is(err, core.ErrSuperseded) {
			// The newer job owns the status from here on.
			log.Info("job superseded during analysis, discarding results")
			return nil
		}
		if markErr := j.store.MarkFailed(ctx, job.PRID); markErr != nil {
			log.Error("failed to mark pull request failed", "error", markErr)
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := j.store.MarkCompleted(ctx, job.PRID, result.CommentCount); err != nil {
		return fmt.Errorf("failed to mark pull request completed: %w", err)
	}

	errs, warns, infos := core.CountBySeverity(result.Issues)
	if err := j.store.SaveReview(ctx, &core.Review{
		RepoFullName: job.Owner + "/" + job.Repo,
		PRNumber:     job.PRNumber,
		HeadSHA:      job.HeadSHA,
		ErrorCount:   errs,
		WarningCount: warns,
		InfoCount:    infos,
	}); err != nil {
		// The review is already published and the PR marked completed; losing
		// the summary row is not worth a retry that would re-run the job.
		log.Error("failed to save review summary", "error", err)
	}

	log.Info("analysis completed", "comments", result.CommentCount, "issues", len(result.Issues))
	return nil
}

// validateInputs ensures the job contains all required fields.
func (j *ReviewJob) validateInputs(job *core.AnalysisJob) error {
	if job == nil {
		return fmt.Errorf("job cannot be nil")
	}
	if job.ID == "" {
		return fmt.Errorf("job ID cannot be empty")
	}
	if job.PRID <= 0 {
		return fmt.Errorf("pull request ID must be positive, got: %d", job.PRID)
	}
	if job.Owner == "" || job.Repo == "" {
		return fmt.Errorf("repository owner and name cannot be empty")
	}
	if job.PRNumber <= 0 {
		return fmt.Errorf("pull request number must be positive, got: %d", job.PRNumber)
	}
	if job.InstallationID <= 0 {
		return fmt.Errorf("installation ID must be positive, got: %d", job.InstallationID)
	}
	return nil
}
