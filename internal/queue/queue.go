// Package queue delivers analysis jobs to a pool of review workers with
// durable, at-least-once semantics.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sevigo/pr-sentinel/internal/config"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// Queue is a durable job queue backed by the analysis_jobs table. Jobs are
// recorded before dispatch, retried with exponential backoff up to a fixed
// attempt ceiling, removed on success, and retained on terminal failure for
// inspection. Delivery is at-least-once; jobs for the same pull request are
// not serialized (the per-PR lease handles superseding pushes).
type Queue struct {
	store    storage.Store
	job      core.Job
	cfg      config.QueueConfig
	jobQueue chan *core.AnalysisJob
	wg       sync.WaitGroup
	baseCtx  context.Context
	logger   *slog.Logger
}

// New initializes the queue and starts its worker pool. If MaxWorkers is 0 or
// negative, it defaults to 1.
func New(ctx context.Context, store storage.Store, job core.Job, cfg config.QueueConfig, logger *slog.Logger) *Queue {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}

	q := &Queue{
		store:    store,
		job:      job,
		cfg:      cfg,
		jobQueue: make(chan *core.AnalysisJob, 100),
		baseCtx:  ctx,
		logger:   logger,
	}
	q.startWorkers()
	return q
}

// startWorkers launches MaxWorkers goroutines to process jobs from the queue.
func (q *Queue) startWorkers() {
	for i := range q.cfg.MaxWorkers {
		q.wg.Add(1)
		go q.startWorker(i)
	}
}

// startWorker processes jobs from the channel until it's closed.
func (q *Queue) startWorker(workerID int) {
	defer q.wg.Done()
	q.logger.Info("starting review worker", "id", workerID)

	for job := range q.jobQueue {
		q.processJob(workerID, job)
	}

	q.logger.Info("shutting down review worker", "id", workerID)
}

// processJob runs a job with retries. Backoff delays start at BackoffBase and
// double each attempt. After the ceiling the job row is marked failed and
// kept; the queue takes no further action (a fresh webhook event starts over).
func (q *Queue) processJob(workerID int, job *core.AnalysisJob) {
	log := q.logger.With("worker_id", workerID, "job", job.ID, "repo", job.Owner+"/"+job.Repo, "pr", job.PRNumber)
	log.Info("worker processing job")

	attempts := job.Attempts

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = q.cfg.BackoffBase
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	operation := func() error {
		attempts++
		if err := q.store.MarkJobRunning(q.baseCtx, job.ID, attempts); err != nil {
			log.Error("failed to record job attempt", "error", err)
		}

		runCtx := q.baseCtx
		if q.cfg.JobTimeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(q.baseCtx, q.cfg.JobTimeout)
			defer cancel()
		}

		err := q.job.Run(runCtx, job)
		if err != nil {
			log.Error("review job attempt failed", "attempt", attempts, "error", err)
		}
		return err
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(policy, uint64(q.cfg.MaxAttempts-1)))
	if err != nil {
		log.Error("review job failed permanently", "attempts", attempts, "error", err)
		if markErr := q.store.MarkJobFailed(q.baseCtx, job.ID, attempts, err.Error()); markErr != nil {
			log.Error("failed to mark job failed", "error", markErr)
		}
		return
	}

	if err := q.store.MarkJobDone(q.baseCtx, job.ID); err != nil {
		log.Error("failed to remove completed job", "error", err)
	}
}

// Enqueue durably records the job and hands it to the worker pool. The HTTP
// caller gets an answer as soon as the job is accepted.
func (q *Queue) Enqueue(ctx context.Context, job *core.AnalysisJob) error {
	job.Status = core.JobPending
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := q.store.InsertJob(ctx, job); err != nil {
		return fmt.Errorf("failed to persist analysis job: %w", err)
	}

	q.logger.Info("queuing analysis job", "job", job.ID, "repo", job.Owner+"/"+job.Repo, "pr", job.PRNumber)

	select {
	case q.jobQueue <- job:
		return nil
	default:
		if err := q.store.MarkJobFailed(ctx, job.ID, 0, "job queue is full"); err != nil {
			q.logger.Error("failed to mark overflowed job", "job", job.ID, "error", err)
		}
		return fmt.Errorf("job queue is full, cannot accept new review job")
	}
}

// Resume reloads jobs that were pending or running when the process last
// stopped and schedules them again. Called once at startup.
func (q *Queue) Resume(ctx context.Context) error {
	jobs, err := q.store.ListPendingJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load interrupted jobs: %w", err)
	}

	for _, job := range jobs {
		select {
		case q.jobQueue <- job:
			q.logger.Info("resuming interrupted job", "job", job.ID, "pr", job.PRNumber)
		default:
			q.logger.Warn("queue full while resuming, job stays pending", "job", job.ID)
			return nil
		}
	}
	return nil
}

// Stop gracefully shuts down the queue, waiting for in-flight jobs to finish.
func (q *Queue) Stop() {
	q.logger.Info("stopping queue and waiting for jobs to finish")
	close(q.jobQueue)
	q.wg.Wait()
	q.logger.Info("all review jobs have finished")
}
