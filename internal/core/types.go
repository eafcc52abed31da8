// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"database/sql"
	"time"
)

// Status tracks the review lifecycle of a pull request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAnalyzing Status = "analyzing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Severity classifies a single review issue.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError:
		return true
	}
	return false
}

// ReviewStyle is a named prompt-shaping policy controlling review tone and focus.
type ReviewStyle string

const (
	StyleStandard      ReviewStyle = "standard"
	StyleStrict        ReviewStyle = "strict"
	StyleCollaborative ReviewStyle = "collaborative"
)

// Valid reports whether the style is one of the known policies.
func (s ReviewStyle) Valid() bool {
	switch s {
	case StyleStandard, StyleStrict, StyleCollaborative:
		return true
	}
	return false
}

// Guidance returns the style-specific reviewer instructions rendered into the
// review prompt.
func (s ReviewStyle) Guidance() string {
	switch s {
	case StyleStrict:
		return "Provide a thorough code review focusing on correctness, security, edge cases, and maintainability. Be comprehensive and highlight all potential issues."
	case StyleCollaborative:
		return "Provide a supportive code review focusing on suggestions rather than criticisms. Highlight good patterns along with possible improvements."
	default:
		return "Provide a balanced code review focusing on bugs, performance issues, and style improvements. Be direct but constructive."
	}
}

// Repository is a registered source repository, identified by its GitHub ID.
// Processing of webhook events is gated on IsEnabled.
type Repository struct {
	ID             int64       `db:"id"`
	GitHubID       int64       `db:"github_id"`
	FullName       string      `db:"full_name"`
	Owner          string      `db:"owner"`
	Name           string      `db:"name"`
	InstallationID int64       `db:"installation_id"`
	IsEnabled      bool        `db:"is_enabled"`
	ReviewStyle    ReviewStyle `db:"review_style"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

// PullRequest is the persisted review state for one pull request. It is keyed
// by (RepositoryID, Number); repeated webhook events update the same row.
type PullRequest struct {
	ID                int64          `db:"id"`
	RepositoryID      int64          `db:"repository_id"`
	Number            int            `db:"pr_number"`
	Title             string         `db:"title"`
	Author            string         `db:"author"`
	Status            Status         `db:"status"`
	HeadSHA           string         `db:"head_sha"`
	BaseSHA           string         `db:"base_sha"`
	HTMLURL           string         `db:"html_url"`
	DiffURL           string         `db:"diff_url"`
	ReviewStyle       ReviewStyle    `db:"review_style"`
	ActiveJobID       sql.NullString `db:"active_job_id"`
	ReviewStartedAt   sql.NullTime   `db:"review_started_at"`
	ReviewCompletedAt sql.NullTime   `db:"review_completed_at"`
	CommentCount      int            `db:"comment_count"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

// Issue is a single piece of review feedback for a specific line of code.
// Issues are produced per file by the AI reviewer and aggregated per job;
// they are never persisted individually.
type Issue struct {
	Path     string   `json:"path,omitempty"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// AnalysisResult is the outcome of one analysis job: the total number of
// comments posted (inline plus summary) and the aggregated issues.
type AnalysisResult struct {
	CommentCount int
	Issues       []Issue
}

// Review is the stored summary of a completed analysis.
type Review struct {
	ID           int64     `db:"id"`
	RepoFullName string    `db:"repo_full_name"`
	PRNumber     int       `db:"pr_number"`
	HeadSHA      string    `db:"head_sha"`
	ErrorCount   int       `db:"error_count"`
	WarningCount int       `db:"warning_count"`
	InfoCount    int       `db:"info_count"`
	CreatedAt    time.Time `db:"created_at"`
}

// CountBySeverity tallies issues per severity level.
func CountBySeverity(issues []Issue) (errors, warnings, infos int) {
	for _, is := range issues {
		switch is.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return errors, warnings, infos
}
