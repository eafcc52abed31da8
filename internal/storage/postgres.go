package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	// import db drivers
	_ "github.com/lib/pq"

	"github.com/sevigo/pr-sentinel/internal/core"
)

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a new Store backed by PostgreSQL.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) GetRepositoryByGitHubID(ctx context.Context, githubID int64) (*core.Repository, error) {
	var repo core.Repository
	err := s.db.GetContext(ctx, &repo, `SELECT * FROM repositories WHERE github_id = $1`, githubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository %d: %w", githubID, err)
	}
	return &repo, nil
}

func (s *postgresStore) GetRepositoryByFullName(ctx context.Context, fullName string) (*core.Repository, error) {
	var repo core.Repository
	err := s.db.GetContext(ctx, &repo, `SELECT * FROM repositories WHERE full_name = $1`, fullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository %s: %w", fullName, err)
	}
	return &repo, nil
}

// UpsertPullRequest inserts or updates the row keyed by (repository_id, pr_number).
// A new push always restarts analysis, so the status is reset to pending on conflict.
func (s *postgresStore) UpsertPullRequest(ctx context.Context, repo *core.Repository, event *core.PullRequestEvent) (*core.PullRequest, error) {
	query := `
		INSERT INTO pull_requests
			(repository_id, pr_number, title, author, status, head_sha, base_sha, html_url, diff_url, review_style, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (repository_id, pr_number) DO UPDATE SET
			title      = EXCLUDED.title,
			head_sha   = EXCLUDED.head_sha,
			base_sha   = EXCLUDED.base_sha,
			status     = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
		RETURNING *`

	var pr core.PullRequest
	err := s.db.GetContext(ctx, &pr, query,
		repo.ID, event.PRNumber, event.PRTitle, event.Author, core.StatusPending,
		event.HeadSHA, event.BaseSHA, event.HTMLURL, event.DiffURL, repo.ReviewStyle, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pull request %s#%d: %w", repo.FullName, event.PRNumber, err)
	}
	return &pr, nil
}

func (s *postgresStore) GetPullRequest(ctx context.Context, id int64) (*core.PullRequest, error) {
	var pr core.PullRequest
	err := s.db.GetContext(ctx, &pr, `SELECT * FROM pull_requests WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pull request %d: %w", id, err)
	}
	return &pr, nil
}

func (s *postgresStore) MarkAnalyzing(ctx context.Context, prID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pull_requests SET status = $2, review_started_at = $3, updated_at = $3 WHERE id = $1`,
		prID, core.StatusAnalyzing, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark pull request %d analyzing: %w", prID, err)
	}
	return nil
}

func (s *postgresStore) MarkCompleted(ctx context.Context, prID int64, commentCount int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pull_requests SET status = $2, review_completed_at = $3, comment_count = $4, updated_at = $3 WHERE id = $1`,
		prID, core.StatusCompleted, time.Now(), commentCount)
	if err != nil {
		return fmt.Errorf("failed to mark pull request %d completed: %w", prID, err)
	}
	return nil
}

func (s *postgresStore) MarkFailed(ctx context.Context, prID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pull_requests SET status = $2, updated_at = $3 WHERE id = $1`,
		prID, core.StatusFailed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark pull request %d failed: %w", prID, err)
	}
	return nil
}

func (s *postgresStore) SetActiveJob(ctx context.Context, prID int64, jobID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pull_requests SET active_job_id = $2, updated_at = $3 WHERE id = $1`,
		prID, jobID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set active job for pull request %d: %w", prID, err)
	}
	return nil
}

func (s *postgresStore) IsActiveJob(ctx context.Context, prID int64, jobID string) (bool, error) {
	var active sql.NullString
	err := s.db.GetContext(ctx, &active, `SELECT active_job_id FROM pull_requests WHERE id = $1`, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, core.ErrNotFound
		}
		return false, fmt.Errorf("failed to read active job for pull request %d: %w", prID, err)
	}
	return active.Valid && active.String == jobID, nil
}

func (s *postgresStore) InsertJob(ctx context.Context, job *core.AnalysisJob) error {
	query := `
		INSERT INTO analysis_jobs
			(id, pr_id, repository_id, installation_id, owner, repo, pr_number, head_sha, base_sha, status, attempts, last_error, created_at, updated_at)
		VALUES (:id, :pr_id, :repository_id, :installation_id, :owner, :repo, :pr_number, :head_sha, :base_sha, :status, :attempts, :last_error, :created_at, :updated_at)`
	_, err := s.db.NamedExecContext(ctx, query, job)
	if err != nil {
		return fmt.Errorf("failed to insert analysis job %s: %w", job.ID, err)
	}
	return nil
}

// ListPendingJobs returns jobs that never reached a terminal state, oldest
// first. Used on startup to resume deliveries interrupted by a restart.
func (s *postgresStore) ListPendingJobs(ctx context.Context) ([]*core.AnalysisJob, error) {
	var jobs []*core.AnalysisJob
	err := s.db.SelectContext(ctx, &jobs,
		`SELECT * FROM analysis_jobs WHERE status IN ($1, $2) ORDER BY created_at`,
		core.JobPending, core.JobRunning)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending jobs: %w", err)
	}
	return jobs, nil
}

func (s *postgresStore) MarkJobRunning(ctx context.Context, jobID string, attempts int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE analysis_jobs SET status = $2, attempts = $3, updated_at = $4 WHERE id = $1`,
		jobID, core.JobRunning, attempts, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark job %s running: %w", jobID, err)
	}
	return nil
}

// MarkJobDone removes the job from the durable queue; successful jobs leave
// no trace beyond the pull request record and the review summary.
func (s *postgresStore) MarkJobDone(ctx context.Context, jobID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM analysis_jobs WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete completed job %s: %w", jobID, err)
	}
	return nil
}

// MarkJobFailed records the terminal failure. The row is retained for
// inspection rather than deleted.
func (s *postgresStore) MarkJobFailed(ctx context.Context, jobID string, attempts int, lastError string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE analysis_jobs SET status = $2, attempts = $3, last_error = $4, updated_at = $5 WHERE id = $1`,
		jobID, core.JobFailed, attempts, lastError, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark job %s failed: %w", jobID, err)
	}
	return nil
}

func (s *postgresStore) HasPublished(ctx context.Context, prID int64, headSHA, path string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM published_reviews WHERE pr_id = $1 AND head_sha = $2 AND file_path = $3)`,
		prID, headSHA, path)
	if err != nil {
		return false, fmt.Errorf("failed to check published reviews for pull request %d: %w", prID, err)
	}
	return exists, nil
}

func (s *postgresStore) RecordPublished(ctx context.Context, prID int64, headSHA, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO published_reviews (pr_id, head_sha, file_path, created_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (pr_id, head_sha, file_path) DO NOTHING`,
		prID, headSHA, path, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record published review for pull request %d: %w", prID, err)
	}
	return nil
}

// SaveReview inserts a new review summary record into the database.
func (s *postgresStore) SaveReview(ctx context.Context, review *core.Review) error {
	query := `
		INSERT INTO reviews (repo_full_name, pr_number, head_sha, error_count, warning_count, info_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, query,
		review.RepoFullName, review.PRNumber, review.HeadSHA,
		review.ErrorCount, review.WarningCount, review.InfoCount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save review for %s#%d: %w", review.RepoFullName, review.PRNumber, err)
	}
	return nil
}

// GetLatestReviewForPR retrieves the most recent review summary for a given pull request.
func (s *postgresStore) GetLatestReviewForPR(ctx context.Context, repoFullName string, prNumber int) (*core.Review, error) {
	query := `
		SELECT id, repo_full_name, pr_number, head_sha, error_count, warning_count, info_count, created_at
		FROM reviews
		WHERE repo_full_name = $1 AND pr_number = $2
		ORDER BY created_at DESC
		LIMIT 1`

	var r core.Review
	err := s.db.GetContext(ctx, &r, query, repoFullName, prNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest review for %s#%d: %w", repoFullName, prNumber, err)
	}
	return &r, nil
}
