package core

import (
	"fmt"

	"github.com/google/go-github/v73/github"
)

// validActions are the pull request actions that trigger a review. A push to
// an open PR arrives as "synchronize".
var validActions = map[string]struct{}{
	"opened":      {},
	"synchronize": {},
	"reopened":    {},
}

// PullRequestEvent is a simplified, internal view of a GitHub pull_request
// webhook payload.
type PullRequestEvent struct {
	Action string

	RepoGitHubID int64
	RepoOwner    string
	RepoName     string
	RepoFullName string

	PRNumber int
	PRTitle  string
	Author   string
	HeadSHA  string
	BaseSHA  string
	HTMLURL  string
	DiffURL  string

	InstallationID int64
}

// EventFromPullRequest transforms a raw GitHub PullRequestEvent into the
// application's internal representation. It acts as an anti-corruption layer,
// validating the payload and filtering out actions that do not warrant a
// review before anything touches the store or the queue.
func EventFromPullRequest(event *github.PullRequestEvent) (*PullRequestEvent, error) {
	action := event.GetAction()
	if _, ok := validActions[action]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAction, action)
	}

	pr := event.GetPullRequest()
	if pr == nil || pr.GetNumber() <= 0 {
		return nil, fmt.Errorf("pull request data is missing from the event")
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetID() == 0 || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository information is missing from the event")
	}

	if event.GetInstallation().GetID() == 0 {
		return nil, fmt.Errorf("installation ID is missing from the event")
	}

	if pr.GetHead().GetSHA() == "" || pr.GetBase().GetSHA() == "" {
		return nil, fmt.Errorf("revision identifiers are missing from the event")
	}

	return &PullRequestEvent{
		Action:         action,
		RepoGitHubID:   repo.GetID(),
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		PRNumber:       pr.GetNumber(),
		PRTitle:        pr.GetTitle(),
		Author:         pr.GetUser().GetLogin(),
		HeadSHA:        pr.GetHead().GetSHA(),
		BaseSHA:        pr.GetBase().GetSHA(),
		HTMLURL:        pr.GetHTMLURL(),
		DiffURL:        pr.GetDiffURL(),
		InstallationID: event.GetInstallation().GetID(),
	}, nil
}
