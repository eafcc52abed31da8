package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevigo/goframe/llms"

	"github.com/sevigo/pr-sentinel/internal/core"
)

// FileReview is one file submitted for AI review.
type FileReview struct {
	Path        string
	Language    string
	Content     string
	Style       core.ReviewStyle
	PackageName string
	Imports     []string
}

// Reviewer produces review issues for a single file.
//
//go:generate mockgen -destination=../../mocks/mock_reviewer.go -package=mocks . Reviewer
type Reviewer interface {
	ReviewFile(ctx context.Context, req FileReview) ([]core.Issue, error)
}

type promptData struct {
	Language      string
	StyleGuidance string
	FilePath      string
	Content       string
	PackageName   string
	Imports       []string
}

// engineReviewer dispatches between two models: files at or above the size
// threshold go to the large-context engine, the rest to the standard one.
type engineReviewer struct {
	prompts      *PromptManager
	standard     llms.Model
	largeContext llms.Model
	threshold    int
	callTimeout  time.Duration
	logger       *slog.Logger
}

// NewReviewer builds a Reviewer over the given engines. largeContext may be
// nil, in which case all files go to the standard engine.
func NewReviewer(prompts *PromptManager, standard, largeContext llms.Model, threshold int, callTimeout time.Duration, logger *slog.Logger) Reviewer {
	if threshold <= 0 {
		threshold = 10000
	}
	if callTimeout <= 0 {
		callTimeout = 3 * time.Minute
	}
	return &engineReviewer{
		prompts:      prompts,
		standard:     standard,
		largeContext: largeContext,
		threshold:    threshold,
		callTimeout:  callTimeout,
		logger:       logger,
	}
}

// ReviewFile renders the style-shaped prompt, submits it to the engine chosen
// by content size, and parses the structured issue list out of the response.
func (r *engineReviewer) ReviewFile(ctx context.Context, req FileReview) ([]core.Issue, error) {
	prompt, err := r.prompts.Render(CodeReviewPrompt, DefaultProvider, promptData{
		Language:      req.Language,
		StyleGuidance: req.Style.Guidance(),
		FilePath:      req.Path,
		Content:       req.Content,
		PackageName:   req.PackageName,
		Imports:       req.Imports,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render review prompt: %w", err)
	}

	model := r.standard
	engine := "standard"
	if r.largeContext != nil && len(req.Content) >= r.threshold {
		model = r.largeContext
		engine = "large-context"
	}
	r.logger.Debug("submitting file for review", "file", req.Path, "engine", engine, "size", len(req.Content))

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	response, err := model.Call(callCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call failed for %s: %w", req.Path, err)
	}

	issues, err := ParseIssues(response)
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// SummaryData feeds the summary comment template.
type SummaryData struct {
	Style        core.ReviewStyle
	ErrorCount   int
	WarningCount int
	InfoCount    int
	HasIssues    bool
}

// RenderSummary produces the body of the summary comment posted after all
// per-file reviews.
func RenderSummary(prompts *PromptManager, style core.ReviewStyle, issues []core.Issue) (string, error) {
	errs, warns, infos := core.CountBySeverity(issues)
	return prompts.Render(SummaryPrompt, DefaultProvider, SummaryData{
		Style:        style,
		ErrorCount:   errs,
		WarningCount: warns,
		InfoCount:    infos,
		HasIssues:    len(issues) > 0,
	})
}
