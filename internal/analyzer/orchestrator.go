package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/goframe/parsers"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/github"
	"github.com/sevigo/pr-sentinel/internal/llm"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// repoConfigPath is the optional in-repo configuration file read from the
// head revision.
const repoConfigPath = ".pr-sentinel.yml"

// Orchestrator turns a queued analysis job into aggregated review issues and
// posted comments. Failure isolation is per file: one unreachable file or one
// bad model response never aborts the rest of the review, since partial
// comments are strictly better than none. Only collaborator-session failures
// (auth, VCS API) are fatal to the job.
type Orchestrator struct {
	clients      *github.ClientProvider
	reviewer     llm.Reviewer
	publisher    *Publisher
	store        storage.Store
	registry     parsers.ParserRegistry
	fileParallel int
	logger       *slog.Logger
}

// NewOrchestrator creates an Orchestrator. fileParallel bounds how many files
// are analyzed concurrently within one job.
func NewOrchestrator(
	clients *github.ClientProvider,
	reviewer llm.Reviewer,
	publisher *Publisher,
	store storage.Store,
	registry parsers.ParserRegistry,
	fileParallel int,
	logger *slog.Logger,
) *Orchestrator {
	if fileParallel <= 0 {
		fileParallel = 1
	}
	return &Orchestrator{
		clients:      clients,
		reviewer:     reviewer,
		publisher:    publisher,
		store:        store,
		registry:     registry,
		fileParallel: fileParallel,
		logger:       logger,
	}
}

// Analyze fetches the pull request's changed files, reviews each supported
// file, publishes the aggregated issues, and returns the total comment count
// (inline comments plus the summary comment).
func (o *Orchestrator) Analyze(ctx context.Context, job *core.AnalysisJob, style core.ReviewStyle) (*core.AnalysisResult, error) {
	client, err := o.clients.GetClient(ctx, job.InstallationID)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	pr, err := client.GetPullRequest(ctx, job.Owner, job.Repo, job.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR details: %w", err)
	}
	headSHA := job.HeadSHA
	if sha := pr.GetHead().GetSHA(); sha != "" {
		headSHA = sha
	}

	files, err := client.GetChangedFiles(ctx, job.Owner, job.Repo, job.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}

	repoCfg := o.loadRepoConfig(ctx, client, job, headSHA)
	if repoCfg.ReviewStyle.Valid() {
		o.logger.Info("review style overridden by repo config", "style", repoCfg.ReviewStyle, "pr", job.PRNumber)
		style = repoCfg.ReviewStyle
	}

	// Bounded parallel per-file analysis. Results land in listing-order slots
	// so the aggregate is deterministic regardless of completion order.
	issuesPerFile := make([][]core.Issue, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.fileParallel)

	for i, file := range files {
		g.Go(func() error {
			issuesPerFile[i] = o.analyzeFile(gctx, client, job, file, headSHA, style, repoCfg.IgnorePaths)
			return nil
		})
	}
	// Workers only record per-file results; nothing returns an error here.
	_ = g.Wait()

	var allIssues []core.Issue
	for _, fileIssues := range issuesPerFile {
		allIssues = append(allIssues, fileIssues...)
	}

	// A newer push may have superseded this job while files were in flight;
	// check the lease once more before anything is posted.
	active, err := o.store.IsActiveJob(ctx, job.PRID, job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check job lease: %w", err)
	}
	if !active {
		return nil, core.ErrSuperseded
	}

	inlineCount, err := o.publisher.Publish(ctx, client, job, style, allIssues)
	if err != nil {
		return nil, err
	}

	return &core.AnalysisResult{
		// +1 for the summary comment.
		CommentCount: inlineCount + 1,
		Issues:       allIssues,
	}, nil
}

// analyzeFile runs the full skip/fetch/classify/review sequence for one
// changed file. Every failure path is absorbed: the file contributes zero
// issues and the job carries on.
func (o *Orchestrator) analyzeFile(ctx context.Context, client github.Client, job *core.AnalysisJob, file github.ChangedFile, headSHA string, style core.ReviewStyle, ignorePaths []string) []core.Issue {
	log := o.logger.With("file", file.Filename, "pr", job.PRNumber)

	if file.Status == "removed" || file.Changes <= 0 {
		return nil
	}
	if IsBinary(file.Filename) {
		return nil
	}
	if matchesIgnorePath(file.Filename, ignorePaths) {
		log.Debug("skipping ignored path")
		return nil
	}

	language, err := ClassifyLanguage(file.Filename)
	if err != nil {
		log.Debug("skipping unsupported file type")
		return nil
	}

	content, err := client.GetFileContent(ctx, job.Owner, job.Repo, file.Filename, headSHA)
	if err != nil {
		log.Warn("failed to fetch file content, skipping", "error", err)
		return nil
	}
	if content == "" {
		return nil
	}

	review := llm.FileReview{
		Path:     file.Filename,
		Language: language,
		Content:  content,
		Style:    style,
	}
	o.enrichWithSyntaxInfo(&review, log)

	issues, err := o.reviewer.ReviewFile(ctx, review)
	if err != nil {
		log.Warn("AI review yielded no usable issues", "error", err)
		return nil
	}

	for i := range issues {
		issues[i].Path = file.Filename
	}
	return issues
}

// enrichWithSyntaxInfo parses the file and attaches package/import metadata
// the prompt may reference. Parse failures are logged and never block review.
func (o *Orchestrator) enrichWithSyntaxInfo(review *llm.FileReview, log *slog.Logger) {
	if o.registry == nil {
		return
	}

	parser, err := o.registry.GetParserForFile(review.Path, nil)
	if err != nil {
		log.Debug("no syntax parser for file", "error", err)
		return
	}

	meta, err := parser.ExtractMetadata(review.Content, review.Path)
	if err != nil {
		log.Warn("failed to parse file syntax", "error", err)
		return
	}
	review.PackageName = meta.PackageName
	review.Imports = meta.Imports
}

// loadRepoConfig fetches and parses the optional .pr-sentinel.yml at the head
// revision. Any failure falls back to the stored defaults.
func (o *Orchestrator) loadRepoConfig(ctx context.Context, client github.Client, job *core.AnalysisJob, headSHA string) *core.RepoConfig {
	cfg := core.DefaultRepoConfig()

	content, err := client.GetFileContent(ctx, job.Owner, job.Repo, repoConfigPath, headSHA)
	if err != nil || content == "" {
		return cfg
	}
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		o.logger.Warn("invalid repo config file, using defaults", "pr", job.PRNumber, "error", err)
		return core.DefaultRepoConfig()
	}
	return cfg
}
