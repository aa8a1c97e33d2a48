package parser_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/t-okuda/relwatch/pkg/parser"
)

func TestCleanEntry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "linked attribution removed",
			input: "Thanks [@sukka](https://github.com/sukka)! - rest of text",
			want:  "rest of text",
		},
		{
			name:  "linked attribution with hyphenated mixed-case handle",
			input: "Thanks [@Some-User](https://github.com/Some-User)! - Fix stream abort handling",
			want:  "Fix stream abort handling",
		},
		{
			name:  "plain attribution with bang removed",
			input: "thanks @jxom (https://github.com/jxom)! - added formatters",
			want:  "added formatters",
		},
		{
			name:  "plain attribution without bang kept for the validator",
			input: "thanks @someone - did a thing",
			want:  "thanks @someone - did a thing",
		},
		{
			name:  "issue link removed",
			input: "Fix race in poller [#123](https://github.com/x/y/pull/123)",
			want:  "Fix race in poller",
		},
		{
			name:  "commit link removed",
			input: "[`a1b2c3d`](https://github.com/x/y/commit/a1b2c3d) Improve cache reuse",
			want:  "Improve cache reuse",
		},
		{
			name:  "bare commit token removed",
			input: "[`deadbeef0`] Support custom headers",
			want:  "Support custom headers",
		},
		{
			name:  "conventional commit prefix stripped",
			input: "feat(parser): support nested bullets",
			want:  "support nested bullets",
		},
		{
			name:  "fix prefix stripped case-insensitively",
			input: "Fix: handle empty sections",
			want:  "handle empty sections",
		},
		{
			name:  "attribution colon not mistaken for commit prefix",
			input: "Thanks [@a-b](https://github.com/a-b)! - chore: bump internal tooling",
			want:  "bump internal tooling",
		},
		{
			name:  "leading dash remnant and trailing period stripped",
			input: "- Added retry logic.",
			want:  "Added retry logic",
		},
		{
			name:  "whitespace collapsed",
			input: "  Added   support\tfor   proxies  ",
			want:  "Added support for proxies",
		},
		{
			name:  "only one trailing period stripped",
			input: "Support trailing ellipsis..",
			want:  "Support trailing ellipsis.",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, parser.CleanEntry(tt.input)).Equal(tt.want)
		})
	}
}

func TestCleanEntryIsTotal(t *testing.T) {
	// No input may panic or error, only transform.
	inputs := []string{
		"[](",
		"Thanks [@",
		"]][[",
		"feat(:",
		"....",
	}
	for _, in := range inputs {
		_ = parser.CleanEntry(in)
	}
}
