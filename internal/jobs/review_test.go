package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	gh "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-sentinel/internal/analyzer"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/github"
	"github.com/sevigo/pr-sentinel/internal/llm"
	"github.com/sevigo/pr-sentinel/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJob() *core.AnalysisJob {
	return &core.AnalysisJob{
		ID:             "job-1",
		PRID:           99,
		RepositoryID:   1,
		InstallationID: 555,
		Owner:          "acme",
		Repo:           "widgets",
		PRNumber:       7,
		HeadSHA:        "head-sha",
	}
}

func newTestReviewJob(t *testing.T, store *mocks.MockStore, client github.Client, reviewer llm.Reviewer) core.Job {
	t.Helper()
	factory := func(_ context.Context, _ int64) (github.Client, error) {
		return client, nil
	}
	provider := github.NewClientProvider(factory, time.Minute, testLogger())

	prompts, err := llm.NewPromptManager()
	require.NoError(t, err)
	publisher := analyzer.NewPublisher(store, prompts, testLogger())
	orchestrator := analyzer.NewOrchestrator(provider, reviewer, publisher, store, nil, 1, testLogger())

	return NewReviewJob(store, orchestrator, testLogger())
}

func TestReviewJob_RejectsInvalidInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	j := newTestReviewJob(t, store, client, reviewer)

	testCases := []struct {
		name   string
		mutate func(*core.AnalysisJob)
	}{
		{"missing job ID", func(j *core.AnalysisJob) { j.ID = "" }},
		{"missing pull request ID", func(j *core.AnalysisJob) { j.PRID = 0 }},
		{"missing owner", func(j *core.AnalysisJob) { j.Owner = "" }},
		{"missing repo", func(j *core.AnalysisJob) { j.Repo = "" }},
		{"missing pull request number", func(j *core.AnalysisJob) { j.PRNumber = 0 }},
		{"missing installation", func(j *core.AnalysisJob) { j.InstallationID = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			job := testJob()
			tc.mutate(job)
			err := j.Run(context.Background(), job)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "input validation failed")
		})
	}

	t.Run("nil job", func(t *testing.T) {
		err := j.Run(context.Background(), nil)
		require.Error(t, err)
	})
}

func TestReviewJob_SkipsSupersededJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(false, nil)

	j := newTestReviewJob(t, store, client, reviewer)
	err := j.Run(context.Background(), testJob())

	// A superseded job is not an error; the newer job carries the review.
	require.NoError(t, err)
}

func TestReviewJob_CompletesAndSavesReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil).Times(2)
	store.EXPECT().GetPullRequest(gomock.Any(), int64(99)).
		Return(&core.PullRequest{ID: 99, Number: 7, ReviewStyle: core.StyleStandard}, nil)
	store.EXPECT().MarkAnalyzing(gomock.Any(), int64(99)).Return(nil)

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(&gh.PullRequest{Head: &gh.PullRequestBranch{SHA: gh.Ptr("head-sha")}}, nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return([]github.ChangedFile{{Filename: "a.py", Status: "modified", Changes: 2}}, nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("", errors.New("404 not found"))
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", "a.py", "head-sha").
		Return("print('hi')\n", nil)

	reviewer.EXPECT().ReviewFile(gomock.Any(), gomock.Any()).
		Return([]core.Issue{
			{Line: 1, Message: "debug print", Severity: core.SeverityWarning},
		}, nil)

	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "a.py").Return(false, nil)
	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(false, nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "a.py").Return(nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(nil)
	client.EXPECT().CreateReview(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)
	client.EXPECT().CreateComment(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)

	store.EXPECT().MarkCompleted(gomock.Any(), int64(99), 2).Return(nil)
	store.EXPECT().SaveReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review *core.Review) error {
			assert.Equal(t, "acme/widgets", review.RepoFullName)
			assert.Equal(t, 7, review.PRNumber)
			assert.Equal(t, "head-sha", review.HeadSHA)
			assert.Equal(t, 0, review.ErrorCount)
			assert.Equal(t, 1, review.WarningCount)
			return nil
		})

	j := newTestReviewJob(t, store, client, reviewer)
	err := j.Run(context.Background(), testJob())

	require.NoError(t, err)
}

func TestReviewJob_MarksFailedOnFatalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil)
	store.EXPECT().GetPullRequest(gomock.Any(), int64(99)).
		Return(&core.PullRequest{ID: 99, Number: 7, ReviewStyle: core.StyleStandard}, nil)
	store.EXPECT().MarkAnalyzing(gomock.Any(), int64(99)).Return(nil)

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(nil, errors.New("401 bad credentials"))

	store.EXPECT().MarkFailed(gomock.Any(), int64(99)).Return(nil)

	j := newTestReviewJob(t, store, client, reviewer)
	err := j.Run(context.Background(), testJob())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis failed")
}

func TestReviewJob_SupersededDuringAnalysisIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)

	gomock.InOrder(
		store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil),
		store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(false, nil),
	)
	store.EXPECT().GetPullRequest(gomock.Any(), int64(99)).
		Return(&core.PullRequest{ID: 99, Number: 7, ReviewStyle: core.StyleStandard}, nil)
	store.EXPECT().MarkAnalyzing(gomock.Any(), int64(99)).Return(nil)

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(&gh.PullRequest{Head: &gh.PullRequestBranch{SHA: gh.Ptr("head-sha")}}, nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).Return(nil, nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("", errors.New("404 not found"))

	j := newTestReviewJob(t, store, client, reviewer)
	err := j.Run(context.Background(), testJob())

	require.NoError(t, err)
}
