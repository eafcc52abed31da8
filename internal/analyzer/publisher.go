package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/github"
	"github.com/sevigo/pr-sentinel/internal/llm"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// summaryPath is the idempotency-ledger sentinel for the summary comment. It
// cannot collide with a real file path.
const summaryPath = "@summary"

// Publisher posts aggregated issues back to the pull request: one review
// batch of inline comments per file, then a single summary comment. The
// published_reviews ledger keyed by (PR, head SHA, path) makes publishing
// idempotent across job retries.
type Publisher struct {
	store   storage.Store
	prompts *llm.PromptManager
	logger  *slog.Logger
}

// NewPublisher creates a Publisher.
func NewPublisher(store storage.Store, prompts *llm.PromptManager, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, prompts: prompts, logger: logger}
}

// Publish groups issues by file, posts each file's batch sorted by line, and
// finishes with the summary comment. A per-file publish failure is logged and
// absorbed; that file's comments are lost, not retried. The returned count
// covers inline comments only, the summary comment is excluded.
func (p *Publisher) Publish(ctx context.Context, client github.Client, job *core.AnalysisJob, style core.ReviewStyle, issues []core.Issue) (int, error) {
	byFile := make(map[string][]core.Issue)
	var order []string
	for _, issue := range issues {
		if _, seen := byFile[issue.Path]; !seen {
			order = append(order, issue.Path)
		}
		byFile[issue.Path] = append(byFile[issue.Path], issue)
	}

	commentCount := 0
	for _, path := range order {
		fileIssues := byFile[path]

		published, err := p.store.HasPublished(ctx, job.PRID, job.HeadSHA, path)
		if err != nil {
			return commentCount, fmt.Errorf("failed to check publish ledger: %w", err)
		}
		if published {
			p.logger.Info("skipping already published comments", "file", path, "pr", job.PRNumber)
			continue
		}

		// Stable sort keeps encounter order for issues on the same line.
		sort.SliceStable(fileIssues, func(i, j int) bool {
			return fileIssues[i].Line < fileIssues[j].Line
		})

		comments := make([]github.DraftReviewComment, 0, len(fileIssues))
		for _, issue := range fileIssues {
			comments = append(comments, github.DraftReviewComment{
				Path: path,
				Line: issue.Line,
				Body: fmt.Sprintf("**%s**: %s", strings.ToUpper(string(issue.Severity)), issue.Message),
			})
		}

		if err := client.CreateReview(ctx, job.Owner, job.Repo, job.PRNumber, comments); err != nil {
			p.logger.Error("failed to post review comments", "file", path, "pr", job.PRNumber, "error", err)
			continue
		}
		if err := p.store.RecordPublished(ctx, job.PRID, job.HeadSHA, path); err != nil {
			p.logger.Error("failed to record published review", "file", path, "error", err)
		}
		commentCount += len(comments)
	}

	if err := p.publishSummary(ctx, client, job, style, issues); err != nil {
		return commentCount, err
	}

	return commentCount, nil
}

// publishSummary posts the single summary comment with per-severity counts,
// guarded by the same ledger so a retried job does not repeat it.
func (p *Publisher) publishSummary(ctx context.Context, client github.Client, job *core.AnalysisJob, style core.ReviewStyle, issues []core.Issue) error {
	published, err := p.store.HasPublished(ctx, job.PRID, job.HeadSHA, summaryPath)
	if err != nil {
		return fmt.Errorf("failed to check publish ledger: %w", err)
	}
	if published {
		p.logger.Info("skipping already published summary", "pr", job.PRNumber)
		return nil
	}

	body, err := llm.RenderSummary(p.prompts, style, issues)
	if err != nil {
		return fmt.Errorf("failed to render summary comment: %w", err)
	}

	if err := client.CreateComment(ctx, job.Owner, job.Repo, job.PRNumber, body); err != nil {
		return fmt.Errorf("failed to post summary comment: %w", err)
	}
	if err := p.store.RecordPublished(ctx, job.PRID, job.HeadSHA, summaryPath); err != nil {
		p.logger.Error("failed to record published summary", "pr", job.PRNumber, "error", err)
	}
	return nil
}
