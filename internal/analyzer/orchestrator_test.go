package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	gh "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/github"
	"github.com/sevigo/pr-sentinel/internal/llm"
	"github.com/sevigo/pr-sentinel/mocks"
)

func newTestOrchestrator(t *testing.T, client github.Client, reviewer llm.Reviewer, store *mocks.MockStore) *Orchestrator {
	t.Helper()
	factory := func(_ context.Context, _ int64) (github.Client, error) {
		return client, nil
	}
	provider := github.NewClientProvider(factory, time.Minute, testLogger())

	prompts, err := llm.NewPromptManager()
	require.NoError(t, err)
	publisher := NewPublisher(store, prompts, testLogger())

	return NewOrchestrator(provider, reviewer, publisher, store, nil, 2, testLogger())
}

func ghPullRequest(headSHA string) *gh.PullRequest {
	return &gh.PullRequest{
		Head: &gh.PullRequestBranch{SHA: gh.Ptr(headSHA)},
	}
}

func TestOrchestrator_ReviewsSupportedFilesOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	job := testJob()

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(ghPullRequest("head-sha"), nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return([]github.ChangedFile{
			{Filename: "a.py", Status: "modified", Changes: 3},
			{Filename: "logo.png", Status: "added", Changes: 1},
			{Filename: "old.go", Status: "removed", Changes: 10},
			{Filename: "data.csv", Status: "modified", Changes: 2},
			{Filename: "untouched.go", Status: "modified", Changes: 0},
		}, nil)

	// No in-repo config file at the head revision.
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("", errors.New("404 not found"))
	// Only the supported, non-binary, non-removed file is fetched.
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", "a.py", "head-sha").
		Return("def handler():\n    pass\n", nil)

	reviewer.EXPECT().ReviewFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.FileReview) ([]core.Issue, error) {
			assert.Equal(t, "a.py", req.Path)
			assert.Equal(t, "python", req.Language)
			assert.Equal(t, core.StyleStandard, req.Style)
			return []core.Issue{{Line: 2, Message: "empty handler", Severity: core.SeverityWarning}}, nil
		})

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil)
	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "a.py").Return(false, nil)
	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(false, nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "a.py").Return(nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(nil)
	client.EXPECT().CreateReview(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)
	client.EXPECT().CreateComment(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)

	o := newTestOrchestrator(t, client, reviewer, store)
	result, err := o.Analyze(context.Background(), job, core.StyleStandard)

	require.NoError(t, err)
	// One inline comment plus the summary.
	assert.Equal(t, 2, result.CommentCount)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "a.py", result.Issues[0].Path)
}

func TestOrchestrator_BinaryOnlyChangeStillSummarizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	job := testJob()

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(ghPullRequest("head-sha"), nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return([]github.ChangedFile{
			{Filename: "logo.png", Status: "added", Changes: 1},
		}, nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("", errors.New("404 not found"))

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil)
	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(false, nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(nil)
	client.EXPECT().CreateComment(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)

	o := newTestOrchestrator(t, client, reviewer, store)
	result, err := o.Analyze(context.Background(), job, core.StyleStandard)

	require.NoError(t, err)
	assert.Equal(t, 1, result.CommentCount)
	assert.Empty(t, result.Issues)
}

func TestOrchestrator_RepoConfigOverridesStyleAndIgnores(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	job := testJob()

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(ghPullRequest("head-sha"), nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return([]github.ChangedFile{
			{Filename: "vendor/dep/dep.go", Status: "modified", Changes: 5},
			{Filename: "cmd/main.go", Status: "modified", Changes: 5},
		}, nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("review_style: strict\nignore_paths:\n  - vendor\n", nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", "cmd/main.go", "head-sha").
		Return("package main\n", nil)

	reviewer.EXPECT().ReviewFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llm.FileReview) ([]core.Issue, error) {
			assert.Equal(t, "cmd/main.go", req.Path)
			assert.Equal(t, core.StyleStrict, req.Style)
			return nil, nil
		})

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil)
	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(false, nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(nil)
	client.EXPECT().CreateComment(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)

	o := newTestOrchestrator(t, client, reviewer, store)
	result, err := o.Analyze(context.Background(), job, core.StyleStandard)

	require.NoError(t, err)
	assert.Equal(t, 1, result.CommentCount)
}

func TestOrchestrator_ModelFailureSkipsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	job := testJob()

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(ghPullRequest("head-sha"), nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return([]github.ChangedFile{
			{Filename: "a.py", Status: "modified", Changes: 3},
		}, nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("", errors.New("404 not found"))
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", "a.py", "head-sha").
		Return("print('hi')\n", nil)

	reviewer.EXPECT().ReviewFile(gomock.Any(), gomock.Any()).
		Return(nil, core.ErrMalformedReview)

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(true, nil)
	store.EXPECT().HasPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(false, nil)
	store.EXPECT().RecordPublished(gomock.Any(), int64(99), "head-sha", "@summary").Return(nil)
	client.EXPECT().CreateComment(gomock.Any(), "acme", "widgets", 7, gomock.Any()).Return(nil)

	o := newTestOrchestrator(t, client, reviewer, store)
	result, err := o.Analyze(context.Background(), job, core.StyleStandard)

	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestOrchestrator_SupersededBeforePublishing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	job := testJob()

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(ghPullRequest("head-sha"), nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return(nil, nil)
	client.EXPECT().GetFileContent(gomock.Any(), "acme", "widgets", ".pr-sentinel.yml", "head-sha").
		Return("", errors.New("404 not found"))

	store.EXPECT().IsActiveJob(gomock.Any(), int64(99), "job-1").Return(false, nil)

	o := newTestOrchestrator(t, client, reviewer, store)
	_, err := o.Analyze(context.Background(), job, core.StyleStandard)

	assert.ErrorIs(t, err, core.ErrSuperseded)
}

func TestOrchestrator_ListFilesFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	client := mocks.NewMockClient(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	job := testJob()

	client.EXPECT().GetPullRequest(gomock.Any(), "acme", "widgets", 7).
		Return(ghPullRequest("head-sha"), nil)
	client.EXPECT().GetChangedFiles(gomock.Any(), "acme", "widgets", 7).
		Return(nil, errors.New("502 bad gateway"))

	o := newTestOrchestrator(t, client, reviewer, store)
	_, err := o.Analyze(context.Background(), job, core.StyleStandard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "changed files")
}
