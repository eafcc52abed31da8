// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/pr-sentinel/internal/config"
)

// ClientFactory creates a GitHub client authenticated as a specific
// application installation. Abstracted so the client cache can be tested
// without real App credentials.
type ClientFactory func(ctx context.Context, installationID int64) (Client, error)

// NewInstallationClientFactory returns a factory that performs the App JWT
// handshake and exchanges it for a short-lived installation token.
func NewInstallationClientFactory(cfg *config.Config, logger *slog.Logger) ClientFactory {
	return func(ctx context.Context, installationID int64) (Client, error) {
		return createInstallationClient(ctx, cfg, installationID, logger)
	}
}

func createInstallationClient(ctx context.Context, cfg *config.Config, installationID int64, logger *slog.Logger) (Client, error) {
	logger.Info("creating GitHub installation client", "installation_id", installationID)

	privateKey, err := os.ReadFile(cfg.GitHub.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key from %s: %w", cfg.GitHub.PrivateKeyPath, err)
	}

	// The apps transport talks to the GitHub App API to mint installation tokens.
	appTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, cfg.GitHub.AppID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}
	appClient := github.NewClient(&http.Client{Transport: appTransport, Timeout: 30 * time.Second})

	token, _, err := appClient.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create installation token for installation ID %d: %w", installationID, err)
	}
	if token.GetToken() == "" {
		return nil, fmt.Errorf("received an empty installation token")
	}
	logger.Info("created installation token", "installation_id", installationID, "expires_at", token.GetExpiresAt())

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.GetToken()})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = 30 * time.Second

	return NewClient(github.NewClient(tc), logger), nil
}
