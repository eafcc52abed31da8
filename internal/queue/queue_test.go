package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-sentinel/internal/config"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingJob counts delivery attempts and fails until failUntil is reached.
type countingJob struct {
	mu        sync.Mutex
	attempts  int
	failUntil int
}

func (j *countingJob) Run(_ context.Context, _ *core.AnalysisJob) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.attempts++
	if j.attempts <= j.failUntil {
		return errors.New("transient analysis failure")
	}
	return nil
}

func (j *countingJob) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.attempts
}

func testQueueConfig() config.QueueConfig {
	return config.QueueConfig{
		MaxWorkers:  1,
		MaxAttempts: 3,
		BackoffBase: 5 * time.Millisecond,
	}
}

func analysisJob() *core.AnalysisJob {
	return &core.AnalysisJob{
		ID:       "job-1",
		PRID:     99,
		Owner:    "acme",
		Repo:     "widgets",
		PRNumber: 7,
	}
}

func TestQueue_DeliversJobOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	job := &countingJob{}

	store.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().MarkJobRunning(gomock.Any(), "job-1", 1).Return(nil)
	store.EXPECT().MarkJobDone(gomock.Any(), "job-1").Return(nil)

	q := New(context.Background(), store, job, testQueueConfig(), testLogger())
	require.NoError(t, q.Enqueue(context.Background(), analysisJob()))
	q.Stop()

	assert.Equal(t, 1, job.count())
}

func TestQueue_RetriesUpToAttemptCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	job := &countingJob{failUntil: 10}

	store.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().MarkJobRunning(gomock.Any(), "job-1", gomock.Any()).Return(nil).Times(3)
	// The exhausted job row is retained, not removed.
	store.EXPECT().MarkJobFailed(gomock.Any(), "job-1", 3, "transient analysis failure").Return(nil)

	q := New(context.Background(), store, job, testQueueConfig(), testLogger())
	require.NoError(t, q.Enqueue(context.Background(), analysisJob()))
	q.Stop()

	assert.Equal(t, 3, job.count())
}

func TestQueue_SucceedsAfterTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	job := &countingJob{failUntil: 1}

	store.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().MarkJobRunning(gomock.Any(), "job-1", 1).Return(nil)
	store.EXPECT().MarkJobRunning(gomock.Any(), "job-1", 2).Return(nil)
	store.EXPECT().MarkJobDone(gomock.Any(), "job-1").Return(nil)

	q := New(context.Background(), store, job, testQueueConfig(), testLogger())
	require.NoError(t, q.Enqueue(context.Background(), analysisJob()))
	q.Stop()

	assert.Equal(t, 2, job.count())
}

func TestQueue_BackoffDelaysGrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	var mu sync.Mutex
	var stamps []time.Time
	job := &timestampJob{mu: &mu, stamps: &stamps}

	store.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().MarkJobRunning(gomock.Any(), "job-1", gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().MarkJobFailed(gomock.Any(), "job-1", 3, gomock.Any()).Return(nil)

	cfg := testQueueConfig()
	cfg.BackoffBase = 20 * time.Millisecond

	q := New(context.Background(), store, job, cfg, testLogger())
	require.NoError(t, q.Enqueue(context.Background(), analysisJob()))
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, stamps, 3)
	first := stamps[1].Sub(stamps[0])
	second := stamps[2].Sub(stamps[1])
	assert.GreaterOrEqual(t, first, 20*time.Millisecond)
	assert.GreaterOrEqual(t, second, 40*time.Millisecond)
}

// timestampJob records when each attempt ran and always fails.
type timestampJob struct {
	mu     *sync.Mutex
	stamps *[]time.Time
}

func (j *timestampJob) Run(_ context.Context, _ *core.AnalysisJob) error {
	j.mu.Lock()
	*j.stamps = append(*j.stamps, time.Now())
	j.mu.Unlock()
	return errors.New("always fails")
}

func TestQueue_EnqueuePersistsBeforeDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	job := &countingJob{}

	store.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	q := New(context.Background(), store, job, testQueueConfig(), testLogger())
	err := q.Enqueue(context.Background(), analysisJob())
	q.Stop()

	require.Error(t, err)
	assert.Equal(t, 0, job.count())
}

func TestQueue_ResumeReschedulesInterruptedJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	job := &countingJob{}

	interrupted := []*core.AnalysisJob{
		{ID: "job-1", PRID: 1, Owner: "acme", Repo: "widgets", PRNumber: 1},
		{ID: "job-2", PRID: 2, Owner: "acme", Repo: "widgets", PRNumber: 2},
	}
	store.EXPECT().ListPendingJobs(gomock.Any()).Return(interrupted, nil)
	store.EXPECT().MarkJobRunning(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	store.EXPECT().MarkJobDone(gomock.Any(), "job-1").Return(nil)
	store.EXPECT().MarkJobDone(gomock.Any(), "job-2").Return(nil)

	q := New(context.Background(), store, job, testQueueConfig(), testLogger())
	require.NoError(t, q.Resume(context.Background()))
	q.Stop()

	assert.Equal(t, 2, job.count())
}
