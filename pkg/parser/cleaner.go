// Package parser implements the changelog section extraction policies: text
// cleaning, entry validation, markdown section scanning, and HTML section
// traversal.
package parser

import (
	"regexp"
	"strings"
)

var (
	// [#123](url) style issue/PR reference links.
	issueLinkRe = regexp.MustCompile(`\[#\d+\]\([^)]*\)`)
	// [`abcdef0`](url) style commit links.
	commitLinkRe = regexp.MustCompile("\\[`[0-9a-fA-F]+`\\]\\([^)]*\\)")
	// Thanks [@user](url)! - contributor attribution, changesets style.
	thanksLinkRe = regexp.MustCompile(`(?i)thanks\s+\[@[\w-]+\]\([^)]*\)\s*!\s*-\s*`)
	// thanks @user (url)! - plain-text contributor attribution. The bang is
	// part of the pattern: a bare "thanks @user -" line is left for the
	// validator to reject instead.
	thanksPlainRe = regexp.MustCompile(`(?i)thanks\s+@[\w-]+\s*(?:\([^)]*\))?\s*!\s*-\s*`)
	// [`abcdef0`] bare commit hash token without a link target.
	commitTokenRe = regexp.MustCompile("\\[`[0-9a-fA-F]+`\\]")
	// feat(scope): conventional-commit prefix.
	convPrefixRe = regexp.MustCompile(`^(?i:feat|fix|chore)(?:\([^)]*\))?:\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanEntry strips markdown noise from a single bullet line. It is total:
// any input yields a cleaned string, possibly empty.
//
// Attribution removal runs before the conventional-commit prefix strip:
// attribution text may contain a colon that would otherwise be misread as a
// commit-type separator.
func CleanEntry(line string) string {
	s := line
	s = issueLinkRe.ReplaceAllString(s, "")
	s = commitLinkRe.ReplaceAllString(s, "")
	s = thanksLinkRe.ReplaceAllString(s, "")
	s = thanksPlainRe.ReplaceAllString(s, "")
	s = commitTokenRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = convPrefixRe.ReplaceAllString(s, "")
	s = strings.TrimPrefix(s, "- ")
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
