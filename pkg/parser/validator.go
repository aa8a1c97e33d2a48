package parser

import (
	"regexp"
	"strings"
)

var (
	leadingHashRe = regexp.MustCompile(`^[0-9a-fA-F]{7,}`)
	headingRe     = regexp.MustCompile(`^#{1,6}\s`)
	refDefRe      = regexp.MustCompile(`^\[[^\]]+\]:`)
)

// IsMeaningfulEntry reports whether a cleaned bullet line is a real,
// displayable changelog entry. The rejection list is source-specific noise
// observed in the monitored changelogs and is expected to grow as sources
// are added.
func IsMeaningfulEntry(s string) bool {
	if len(s) <= 8 {
		return false
	}
	if strings.Contains(strings.ToLower(s), "thanks @") {
		return false
	}
	if strings.HasPrefix(s, "Updated dependencies") {
		return false
	}
	if strings.HasPrefix(s, "@") {
		return false
	}
	if leadingHashRe.MatchString(s) {
		return false
	}
	if s == "-" {
		return false
	}
	// Package-bump noise from monorepo release notes.
	if strings.Contains(s, "core@") || strings.Contains(s, "connectors@") {
		return false
	}
	if headingRe.MatchString(s) {
		return false
	}
	if refDefRe.MatchString(s) {
		return false
	}
	return true
}
