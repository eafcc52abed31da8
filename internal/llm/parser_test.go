package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-sentinel/internal/core"
)

func TestParseIssues(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    []core.Issue
		wantErr bool
	}{
		{
			name: "plain JSON array",
			raw:  `[{"line": 10, "message": "unchecked error", "severity": "error"}]`,
			want: []core.Issue{
				{Line: 10, Message: "unchecked error", Severity: core.SeverityError},
			},
		},
		{
			name: "array wrapped in a code fence",
			raw: "Here is my review:\n```json\n[{\"line\": 3, \"message\": \"prefer early return\", \"severity\": \"info\"}]\n```\nLet me know.",
			want: []core.Issue{
				{Line: 3, Message: "prefer early return", Severity: core.SeverityInfo},
			},
		},
		{
			name: "empty array is a clean review",
			raw:  "No issues found.\n[]",
			want: []core.Issue{},
		},
		{
			name: "severity is normalized",
			raw:  `[{"line": 1, "message": "shadowed variable", "severity": " WARNING "}]`,
			want: []core.Issue{
				{Line: 1, Message: "shadowed variable", Severity: core.SeverityWarning},
			},
		},
		{
			name:    "no array at all",
			raw:     "I could not review this file.",
			wantErr: true,
		},
		{
			name:    "broken JSON between brackets",
			raw:     `[{"line": 1, "message": "x"`,
			wantErr: true,
		},
		{
			name:    "unknown severity",
			raw:     `[{"line": 4, "message": "something", "severity": "critical"}]`,
			wantErr: true,
		},
		{
			name:    "line below one",
			raw:     `[{"line": 0, "message": "something", "severity": "info"}]`,
			wantErr: true,
		},
		{
			name:    "empty message",
			raw:     `[{"line": 2, "message": "   ", "severity": "info"}]`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := ParseIssues(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, core.ErrMalformedReview)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, issues)
		})
	}
}

func TestParseIssues_MultipleEntriesKeepOrder(t *testing.T) {
	raw := `[
		{"line": 20, "message": "second", "severity": "warning"},
		{"line": 5, "message": "first", "severity": "error"}
	]`

	issues, err := ParseIssues(raw)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, 20, issues[0].Line)
	assert.Equal(t, 5, issues[1].Line)
}
