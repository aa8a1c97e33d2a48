package parser_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/t-okuda/relwatch/pkg/parser"
)

func TestParseSimple(t *testing.T) {
	doc := strings.Join([]string{
		"# Changelog",
		"",
		"## 1.2",
		"",
		"- Added vim bindings",
		"- fix: typo", // emitted verbatim, no cleaning under this policy
		"",
		"## 1.1",
		"",
		"- old entry",
	}, "\n")

	rel := parser.ParseSimple(doc)
	gt.Value(t, rel).NotNil()
	gt.Value(t, rel.VersionLabel).Equal("1.2")
	gt.Value(t, rel.BulletBlock).Equal("• Added vim bindings\n• fix: typo\n")
}

func TestParseSimpleHeaderVariants(t *testing.T) {
	t.Run("version with trailing text is not a header", func(t *testing.T) {
		rel := parser.ParseSimple("## 1.2 (beta)\n- something\n")
		gt.Value(t, rel).Nil()
	})

	t.Run("three-part version matches", func(t *testing.T) {
		rel := parser.ParseSimple("## 1.2.3\n- a short one\n")
		gt.Value(t, rel).NotNil()
		gt.Value(t, rel.VersionLabel).Equal("1.2.3")
	})

	t.Run("star bullets are ignored", func(t *testing.T) {
		rel := parser.ParseSimple("## 1.2\n* not a dash bullet\n- a dash bullet\n")
		gt.Value(t, rel.BulletBlock).Equal("• a dash bullet\n")
	})

	t.Run("no header yields nil", func(t *testing.T) {
		gt.Value(t, parser.ParseSimple("just prose\n- with a bullet\n")).Nil()
	})

	t.Run("header without bullets yields empty block", func(t *testing.T) {
		rel := parser.ParseSimple("## 2.0\n\nsome prose\n")
		gt.Value(t, rel).NotNil()
		gt.Value(t, rel.BulletBlock).Equal("")
	})
}

func TestParseStandard(t *testing.T) {
	doc := strings.Join([]string{
		"## 2.0.0",
		"",
		"### Minor Changes",
		"",
		"- Thanks [@someone](https://github.com/someone)! - Added streaming support for tool calls",
		"- Updated dependencies [abc1234]",
		"    - nested entry describing the change",
		"- fix: handle aborted requests gracefully",
		"",
		"## 1.9.0",
		"",
		"- old entry that must not appear",
	}, "\n")

	rel := parser.ParseStandard(doc)
	gt.Value(t, rel).NotNil()
	gt.Value(t, rel.VersionLabel).Equal("2.0.0")

	lines := strings.Split(strings.TrimRight(rel.BulletBlock, "\n"), "\n")
	gt.Array(t, lines).Equal([]string{
		"• Added streaming support for tool calls",
		"  • nested entry describing the change",
		"• handle aborted requests gracefully",
	})
}

func TestParseStandardStopsAtSecondHeader(t *testing.T) {
	doc := "## 3.1.4\n- Added explicit deadline propagation\n## 3.1.3\n- Added another thing entirely\n"
	rel := parser.ParseStandard(doc)
	gt.Value(t, rel.VersionLabel).Equal("3.1.4")
	gt.Value(t, strings.Contains(rel.BulletBlock, "another thing")).Equal(false)
}

func TestParseStandardNoHeader(t *testing.T) {
	gt.Value(t, parser.ParseStandard("# Title\nno versions here\n")).Nil()
}

func TestParseComplexFilteringLookaheadSkip(t *testing.T) {
	// The newest version carries only dependency-bump noise; the parser
	// must look one version ahead and return the first one with content.
	doc := strings.Join([]string{
		"## 1.2.3",
		"",
		"- Updated dependencies [abc1234]:",
		"    - core@2.1.0",
		"",
		"## 1.2.2",
		"",
		"- feat: support configurable request timeouts",
		"- fix: throw a typed error on malformed frames",
		"",
		"## 1.2.1",
		"",
		"- old content",
	}, "\n")

	rel := parser.ParseComplexFiltering(doc)
	gt.Value(t, rel).NotNil()
	gt.Value(t, rel.VersionLabel).Equal("1.2.2")
	gt.Value(t, strings.Contains(rel.BulletBlock, "configurable request timeouts")).Equal(true)
	gt.Value(t, strings.Contains(rel.BulletBlock, "typed error on malformed frames")).Equal(true)
	gt.Value(t, strings.Contains(rel.BulletBlock, "old content")).Equal(false)
}

func TestParseComplexFilteringFallbackToLastVersion(t *testing.T) {
	// The document ends while the last version still holds content; that
	// version is the result even though no later header confirmed it.
	doc := strings.Join([]string{
		"## 5.0.1",
		"- Updated dependencies",
		"## 5.0.0",
		"- feat: add support for batched source checks",
	}, "\n")

	rel := parser.ParseComplexFiltering(doc)
	gt.Value(t, rel).NotNil()
	gt.Value(t, rel.VersionLabel).Equal("5.0.0")
	gt.Value(t, strings.Contains(rel.BulletBlock, "batched source checks")).Equal(true)
}

func TestParseComplexFilteringAllNoise(t *testing.T) {
	doc := "## 2.0.0\n- Updated dependencies\n## 1.9.9\n- Updated dependencies\n"
	gt.Value(t, parser.ParseComplexFiltering(doc)).Nil()
}

func TestParseComplexFilteringHashPrefixStripped(t *testing.T) {
	doc := "## 4.2.0\n- a1b2c3d4: improve reconnect backoff handling\n"
	rel := parser.ParseComplexFiltering(doc)
	gt.Value(t, rel).NotNil()
	gt.Value(t, rel.BulletBlock).Equal("• improve reconnect backoff handling\n")
}

func TestParseComplexFilteringKeywordFallback(t *testing.T) {
	// Without any keyword stem a bullet still passes while fewer than four
	// lines have accumulated.
	doc := strings.Join([]string{
		"## 6.1.0",
		"- first terse entry with no stems at all, really",
		"- second terse entry with no stems at all, really",
		"- third terse entry with no stems at all, really",
		"- fourth terse entry with no stems at all, really",
		"- fifth terse entry with no stems at all, really",
	}, "\n")

	rel := parser.ParseComplexFiltering(doc)
	gt.Value(t, rel).NotNil()
	lines := strings.Split(strings.TrimRight(rel.BulletBlock, "\n"), "\n")
	// The fifth entry arrives after four accumulated lines and has no
	// keyword stem, so it is dropped.
	gt.Number(t, len(lines)).Equal(4)
}
