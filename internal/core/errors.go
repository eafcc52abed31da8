package core

import "errors"

// Sentinel errors for the review pipeline. Anything confined to a single file
// is absorbed by the orchestrator with a logged warning; the remaining errors
// are fatal to the job and surface to the queue's retry handling.
var (
	// ErrSignatureInvalid rejects a webhook whose HMAC signature does not match.
	ErrSignatureInvalid = errors.New("webhook signature invalid")

	// ErrUnsupportedEvent marks webhook event types the pipeline ignores.
	ErrUnsupportedEvent = errors.New("unsupported webhook event")

	// ErrUnsupportedAction marks pull request actions the pipeline ignores.
	ErrUnsupportedAction = errors.New("unsupported pull request action")

	// ErrRepoNotRegistered marks events for repositories that are unknown or disabled.
	ErrRepoNotRegistered = errors.New("repository not registered or disabled")

	// ErrUnsupportedLanguage marks files whose extension maps to no known language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrMalformedReview marks an AI response that did not contain a valid issue list.
	ErrMalformedReview = errors.New("malformed review response")

	// ErrSuperseded marks a job whose pull request lease is now held by a newer job.
	ErrSuperseded = errors.New("job superseded by a newer push")

	// ErrNotFound is returned by the store when a record does not exist.
	ErrNotFound = errors.New("record not found")
)
