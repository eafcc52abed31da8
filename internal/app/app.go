// Package app initializes and orchestrates the main components of the
// PR Sentinel application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sevigo/pr-sentinel/internal/config"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/github"
	"github.com/sevigo/pr-sentinel/internal/queue"
	"github.com/sevigo/pr-sentinel/internal/server"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// App holds the main application components.
type App struct {
	ctx     context.Context
	cfg     *config.Config
	server  *server.Server
	queue   *queue.Queue
	store   storage.Store
	clients *github.ClientProvider
	logger  *slog.Logger
}

// NewApp assembles the application from its wired components.
func NewApp(
	ctx context.Context,
	cfg *config.Config,
	srv *server.Server,
	q *queue.Queue,
	store storage.Store,
	clients *github.ClientProvider,
	logger *slog.Logger,
) *App {
	return &App{
		ctx:     ctx,
		cfg:     cfg,
		server:  srv,
		queue:   q,
		store:   store,
		clients: clients,
		logger:  logger,
	}
}

// Start resumes jobs interrupted by the last shutdown and runs the HTTP
// server. It blocks until the server stops.
func (a *App) Start() error {
	a.logger.Info("starting PR Sentinel",
		"server_port", a.cfg.Server.Port,
		"max_workers", a.cfg.Queue.MaxWorkers)

	if err := a.queue.Resume(a.ctx); err != nil {
		a.logger.Error("failed to resume interrupted jobs", "error", err)
	}

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly: the HTTP server first, so no new
// jobs arrive, then the queue, letting in-flight reviews finish.
func (a *App) Stop() error {
	a.logger.Info("shutting down PR Sentinel services")

	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.queue.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("PR Sentinel stopped successfully")
	return nil
}

// EnqueueManualReview queues an analysis job for a pull request outside the
// webhook flow, used by the CLI. The repository must be registered.
func (a *App) EnqueueManualReview(ctx context.Context, fullName string, prNumber int) (int64, error) {
	repo, err := a.store.GetRepositoryByFullName(ctx, fullName)
	if err != nil {
		return 0, fmt.Errorf("repository %s is not registered: %w", fullName, err)
	}

	client, err := a.clients.GetClient(ctx, repo.InstallationID)
	if err != nil {
		return 0, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	ghPR, err := client.GetPullRequest(ctx, repo.Owner, repo.Name, prNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pull request %s#%d: %w", fullName, prNumber, err)
	}

	event := &core.PullRequestEvent{
		RepoGitHubID:   repo.GitHubID,
		RepoOwner:      repo.Owner,
		RepoName:       repo.Name,
		RepoFullName:   repo.FullName,
		PRNumber:       prNumber,
		PRTitle:        ghPR.GetTitle(),
		Author:         ghPR.GetUser().GetLogin(),
		HeadSHA:        ghPR.GetHead().GetSHA(),
		BaseSHA:        ghPR.GetBase().GetSHA(),
		HTMLURL:        ghPR.GetHTMLURL(),
		DiffURL:        ghPR.GetDiffURL(),
		InstallationID: repo.InstallationID,
	}

	pr, err := a.store.UpsertPullRequest(ctx, repo, event)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert pull request: %w", err)
	}

	job := &core.AnalysisJob{
		ID:             uuid.NewString(),
		PRID:           pr.ID,
		RepositoryID:   repo.ID,
		InstallationID: repo.InstallationID,
		Owner:          repo.Owner,
		Repo:           repo.Name,
		PRNumber:       prNumber,
		HeadSHA:        event.HeadSHA,
		BaseSHA:        event.BaseSHA,
	}
	if err := a.store.SetActiveJob(ctx, pr.ID, job.ID); err != nil {
		return 0, fmt.Errorf("failed to set active job: %w", err)
	}
	if err := a.queue.Enqueue(ctx, job); err != nil {
		return 0, err
	}
	return pr.ID, nil
}

// Store exposes the persistence layer for CLI commands.
func (a *App) Store() storage.Store {
	return a.store
}
