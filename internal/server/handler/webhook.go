package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"
	"github.com/google/uuid"

	"github.com/sevigo/pr-sentinel/internal/config"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// maxPayloadBytes caps webhook bodies; GitHub's own limit is 25 MB.
const maxPayloadBytes = 25 << 20

// WebhookHandler ingests pull_request webhooks: it validates the signature,
// filters events, upserts the pull request record, and enqueues an analysis
// job. The 202 response is returned as soon as the job is accepted; analysis
// happens asynchronously.
type WebhookHandler struct {
	cfg    *config.Config
	store  storage.Store
	queue  core.JobQueue
	logger *slog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(cfg *config.Config, store storage.Store, queue core.JobQueue, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		cfg:    cfg,
		store:  store,
		queue:  queue,
		logger: logger,
	}
}

// Handle processes GitHub webhook requests.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Error("failed to read webhook body", "error", err)
		h.respond(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}

	if !VerifySignature(payload, r.Header.Get(signatureHeader), h.cfg.GitHub.WebhookSecret) {
		h.logger.Warn("invalid webhook signature", "remote", r.RemoteAddr)
		h.respond(w, http.StatusUnauthorized, map[string]any{"message": "Invalid signature"})
		return
	}

	if eventType := r.Header.Get("X-GitHub-Event"); eventType != "pull_request" {
		h.logger.Info("ignoring non-pull request event", "type", eventType)
		h.respond(w, http.StatusOK, map[string]any{"message": "Event ignored"})
		return
	}

	var rawEvent github.PullRequestEvent
	if err := json.Unmarshal(payload, &rawEvent); err != nil {
		h.logger.Error("could not parse webhook payload", "error", err)
		h.respond(w, http.StatusBadRequest, map[string]any{"message": "Could not parse webhook"})
		return
	}

	event, err := core.EventFromPullRequest(&rawEvent)
	if err != nil {
		if errors.Is(err, core.ErrUnsupportedAction) {
			h.logger.Info("ignoring pull request action", "action", rawEvent.GetAction())
			h.respond(w, http.StatusOK, map[string]any{"message": "Action ignored"})
			return
		}
		h.logger.Error("invalid pull request event", "error", err)
		h.respond(w, http.StatusBadRequest, map[string]any{"message": "Invalid event payload"})
		return
	}

	h.processEvent(w, r, event)
}

// processEvent gates on the registered repository, upserts the pull request
// record, and enqueues the analysis job.
func (h *WebhookHandler) processEvent(w http.ResponseWriter, r *http.Request, event *core.PullRequestEvent) {
	ctx := r.Context()

	repo, err := h.store.GetRepositoryByGitHubID(ctx, event.RepoGitHubID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			h.logger.Info("repository not registered", "repo", event.RepoFullName)
			h.respond(w, http.StatusOK, map[string]any{"message": "Repository not registered or disabled"})
			return
		}
		h.logger.Error("failed to look up repository", "repo", event.RepoFullName, "error", err)
		h.respond(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}
	if !repo.IsEnabled {
		h.logger.Info("repository disabled", "repo", event.RepoFullName)
		h.respond(w, http.StatusOK, map[string]any{"message": "Repository not registered or disabled"})
		return
	}

	pr, err := h.store.UpsertPullRequest(ctx, repo, event)
	if err != nil {
		h.logger.Error("failed to upsert pull request", "repo", event.RepoFullName, "pr", event.PRNumber, "error", err)
		h.respond(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}

	job := &core.AnalysisJob{
		ID:             uuid.NewString(),
		PRID:           pr.ID,
		RepositoryID:   repo.ID,
		InstallationID: event.InstallationID,
		Owner:          event.RepoOwner,
		Repo:           event.RepoName,
		PRNumber:       event.PRNumber,
		HeadSHA:        event.HeadSHA,
		BaseSHA:        event.BaseSHA,
	}

	// The lease makes this job the one entitled to review the PR; any job
	// still running for an older push abandons once it notices.
	if err := h.store.SetActiveJob(ctx, pr.ID, job.ID); err != nil {
		h.logger.Error("failed to set active job", "pr", event.PRNumber, "error", err)
		h.respond(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}

	if err := h.queue.Enqueue(ctx, job); err != nil {
		h.logger.Error("failed to enqueue analysis job", "repo", event.RepoFullName, "pr", event.PRNumber, "error", err)
		h.respond(w, http.StatusInternalServerError, map[string]any{"message": "Error processing webhook"})
		return
	}

	h.logger.Info("queued pull request for analysis", "repo", event.RepoFullName, "pr", event.PRNumber, "job", job.ID)
	h.respond(w, http.StatusAccepted, map[string]any{
		"message": "Pull request queued for analysis",
		"prId":    pr.ID,
	})
}

func (h *WebhookHandler) respond(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
