// Package storage persists repositories, pull requests, analysis jobs, and
// review summaries.
package storage

import (
	"context"

	"github.com/sevigo/pr-sentinel/internal/core"
)

// Store defines the interface for all database operations.
//
//go:generate mockgen -destination=../../mocks/mock_store.go -package=mocks . Store
type Store interface {
	// Repositories.
	GetRepositoryByGitHubID(ctx context.Context, githubID int64) (*core.Repository, error)
	GetRepositoryByFullName(ctx context.Context, fullName string) (*core.Repository, error)

	// Pull requests. UpsertPullRequest creates the record on the first event
	// for a (repository, number) pair and on later events overwrites title
	// and revisions and resets status to pending.
	UpsertPullRequest(ctx context.Context, repo *core.Repository, event *core.PullRequestEvent) (*core.PullRequest, error)
	GetPullRequest(ctx context.Context, id int64) (*core.PullRequest, error)

	// Status tracking.
	MarkAnalyzing(ctx context.Context, prID int64) error
	MarkCompleted(ctx context.Context, prID int64, commentCount int) error
	MarkFailed(ctx context.Context, prID int64) error

	// Per-PR lease. SetActiveJob records the job currently entitled to review
	// the pull request; a newer push overwrites it, superseding the old job.
	SetActiveJob(ctx context.Context, prID int64, jobID string) error
	IsActiveJob(ctx context.Context, prID int64, jobID string) (bool, error)

	// Durable job queue state.
	InsertJob(ctx context.Context, job *core.AnalysisJob) error
	ListPendingJobs(ctx context.Context) ([]*core.AnalysisJob, error)
	MarkJobRunning(ctx context.Context, jobID string, attempts int) error
	MarkJobDone(ctx context.Context, jobID string) error
	MarkJobFailed(ctx context.Context, jobID string, attempts int, lastError string) error

	// Idempotency ledger for published comment batches, keyed by
	// (pull request, head revision, file path).
	HasPublished(ctx context.Context, prID int64, headSHA, path string) (bool, error)
	RecordPublished(ctx context.Context, prID int64, headSHA, path string) error

	// Review summaries.
	SaveReview(ctx context.Context, review *core.Review) error
	GetLatestReviewForPR(ctx context.Context, repoFullName string, prNumber int) (*core.Review, error)
}
