package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sevigo/pr-sentinel/internal/core"
)

// issuePayload mirrors the JSON contract the review prompt demands from the model.
type issuePayload struct {
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ParseIssues extracts the JSON issue array from a raw model response and
// validates it against the expected schema. Parsing fails closed: a response
// without a well-formed, fully valid array yields core.ErrMalformedReview so
// callers can distinguish "model returned garbage" from a clean empty review.
//
// Models often wrap the array in prose or a code fence, so the array is
// located structurally: from the first '[' to the last ']'.
func ParseIssues(raw string) ([]core.Issue, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON array in response", core.ErrMalformedReview)
	}

	var payload []issuePayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedReview, err)
	}

	issues := make([]core.Issue, 0, len(payload))
	for i, p := range payload {
		severity := core.Severity(strings.ToLower(strings.TrimSpace(p.Severity)))
		if !severity.Valid() {
			return nil, fmt.Errorf("%w: entry %d has unknown severity %q", core.ErrMalformedReview, i, p.Severity)
		}
		if p.Line < 1 {
			return nil, fmt.Errorf("%w: entry %d has invalid line %d", core.ErrMalformedReview, i, p.Line)
		}
		if strings.TrimSpace(p.Message) == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty message", core.ErrMalformedReview, i)
		}
		issues = append(issues, core.Issue{
			Line:     p.Line,
			Message:  strings.TrimSpace(p.Message),
			Severity: severity,
		})
	}

	return issues, nil
}
