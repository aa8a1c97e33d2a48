package parser

import (
	"regexp"
	"strings"

	"github.com/t-okuda/relwatch/pkg/domain/model"
)

var (
	// ## 1.2 or ## 1.2.3 with nothing after the version.
	simpleHeaderRe = regexp.MustCompile(`^##\s+\d+\.\d+(?:\.\d+)?\s*$`)
	// ## 1.2.3 with an optional suffix (pre-release tags, titles).
	versionHeaderRe = regexp.MustCompile(`^##\s+(\d+\.\d+\.\d+\S*.*)$`)
	// Optionally indented -, * or + list marker.
	listItemRe = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	// abcdef01: commit hash prefix occasionally embedded in bullet text.
	hashColonRe = regexp.MustCompile(`^[0-9a-fA-F]{7,}:\s*`)
)

// meaningfulStems are keyword stems that mark a bullet as a user-visible
// change under the filtering policy. Thresholds and the stem list are
// deliberate behavioral constants; see the accompanying tests.
var meaningfulStems = []string{
	"feat", "fix", "add", "improve", "support", "throw", "when",
	"error", "callback", "sent", "remove", "update", "change",
}

// ParseSimple extracts the first release section from a short, dash-only
// changelog. Headers are exact major.minor[.patch] lines; bullets are lines
// starting with "- " and are emitted verbatim, no cleaning or filtering.
// Returns nil when no header matches.
func ParseSimple(doc string) *model.ParsedRelease {
	var (
		version string
		block   strings.Builder
	)

	for _, line := range strings.Split(doc, "\n") {
		if simpleHeaderRe.MatchString(line) {
			if version != "" {
				break
			}
			version = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "##"))
			continue
		}
		if version == "" {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
			block.WriteString("• " + strings.TrimSpace(rest) + "\n")
		}
	}

	if version == "" {
		return nil
	}
	return &model.ParsedRelease{VersionLabel: version, BulletBlock: block.String()}
}

// ParseStandard extracts the first release section, cleaning each bullet and
// dropping entries rejected by the validator. Bullets indented more than two
// characters become nested. Returns nil when no header matches.
func ParseStandard(doc string) *model.ParsedRelease {
	var (
		version string
		block   strings.Builder
	)

	for _, line := range strings.Split(doc, "\n") {
		if m := versionHeaderRe.FindStringSubmatch(line); m != nil {
			if version != "" {
				break
			}
			version = strings.TrimSpace(m[1])
			continue
		}
		if version == "" {
			continue
		}
		m := listItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cleaned := CleanEntry(m[2])
		if !IsMeaningfulEntry(cleaned) {
			continue
		}
		prefix := "• "
		if len(m[1]) > 2 {
			prefix = "  • "
		}
		block.WriteString(prefix + cleaned + "\n")
	}

	if version == "" {
		return nil
	}
	return &model.ParsedRelease{VersionLabel: version, BulletBlock: block.String()}
}

// ParseComplexFiltering extracts the latest release that has user-visible
// content, skipping forward past versions whose bullets are all noise. Some
// monorepo release trains publish consecutive versions containing only
// dependency bumps; the scan keeps accumulating under the current version
// and finalizes the previous one as soon as a later header proves it had
// real content, so the whole file never needs scanning.
func ParseComplexFiltering(doc string) *model.ParsedRelease {
	var (
		curVersion string
		curBullets []string
		final      *model.ParsedRelease
	)

	finalize := func(version string, bullets []string) *model.ParsedRelease {
		var block strings.Builder
		for _, b := range bullets {
			block.WriteString(b + "\n")
		}
		return &model.ParsedRelease{VersionLabel: version, BulletBlock: block.String()}
	}

	for _, line := range strings.Split(doc, "\n") {
		if m := versionHeaderRe.FindStringSubmatch(line); m != nil {
			if curVersion != "" && len(curBullets) > 0 && final == nil {
				final = finalize(curVersion, curBullets)
				break
			}
			curVersion = strings.TrimSpace(m[1])
			curBullets = nil
			continue
		}
		if curVersion == "" {
			continue
		}
		lm := listItemRe.FindStringSubmatch(line)
		if lm == nil {
			continue
		}
		text := hashColonRe.ReplaceAllString(lm[2], "")
		cleaned := CleanEntry(text)
		if !IsMeaningfulEntry(cleaned) {
			continue
		}
		// Terse releases may have no keyword hits at all; tolerate them
		// until a few lines have accumulated.
		if !containsMeaningfulStem(cleaned) && len(curBullets) >= 4 {
			continue
		}
		if len(cleaned) <= 8 {
			continue
		}
		curBullets = append(curBullets, "• "+cleaned)
	}

	if final != nil {
		return final
	}
	if curVersion != "" && len(curBullets) > 0 {
		return finalize(curVersion, curBullets)
	}
	return nil
}

func containsMeaningfulStem(s string) bool {
	lower := strings.ToLower(s)
	for _, stem := range meaningfulStems {
		if strings.Contains(lower, stem) {
			return true
		}
	}
	return false
}
