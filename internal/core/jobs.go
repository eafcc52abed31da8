package core

import (
	"context"
	"time"
)

// JobStatus tracks a job's position in the durable queue.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// AnalysisJob is the unit of work delivered from the webhook ingestor to a
// review worker. It carries everything a worker needs to re-run the analysis
// from scratch on a retry.
type AnalysisJob struct {
	ID             string    `db:"id"`
	PRID           int64     `db:"pr_id"`
	RepositoryID   int64     `db:"repository_id"`
	InstallationID int64     `db:"installation_id"`
	Owner          string    `db:"owner"`
	Repo           string    `db:"repo"`
	PRNumber       int       `db:"pr_number"`
	HeadSHA        string    `db:"head_sha"`
	BaseSHA        string    `db:"base_sha"`
	Status         JobStatus `db:"status"`
	Attempts       int       `db:"attempts"`
	LastError      string    `db:"last_error"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// JobQueue accepts analysis jobs for asynchronous processing. Delivery is
// at-least-once: a job is retried with backoff until it succeeds or its
// attempt budget is exhausted. This interface decouples the webhook handler
// from the queue implementation.
type JobQueue interface {
	// Enqueue durably records the job and schedules it for delivery. It
	// returns once the job is accepted; analysis happens asynchronously.
	Enqueue(ctx context.Context, job *AnalysisJob) error
}

// Job is a single executable unit of work run by a queue worker for each
// delivery attempt of an AnalysisJob.
type Job interface {
	// Run executes the job's logic. It returns an error when the attempt
	// failed and should be retried by the queue.
	Run(ctx context.Context, job *AnalysisJob) error
}
