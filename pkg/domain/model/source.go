package model

// SectionStyle selects which parsing policy applies to a source's changelog
// document.
type SectionStyle string

const (
	// StyleSimple matches exact major.minor[.patch] headers and captures
	// dash bullets verbatim, no cleaning.
	StyleSimple SectionStyle = "simple"
	// StyleStandard matches major.minor.patch headers and runs each bullet
	// through cleaning and validation.
	StyleStandard SectionStyle = "standard"
	// StyleComplexFiltering is StyleStandard plus a one-version lookahead
	// that skips releases containing only dependency-bump noise.
	StyleComplexFiltering SectionStyle = "complex"
	// StyleHTMLHeadingSiblings walks the first top-level heading and its
	// sibling elements of a rendered changelog page.
	StyleHTMLHeadingSiblings SectionStyle = "html-heading"
	// StyleHTMLArticleKeyword scans article elements of a multi-product
	// changelog page for a product's keywords.
	StyleHTMLArticleKeyword SectionStyle = "html-article"
)

// SourceConfig represents the static descriptor of one monitored source.
// Instances are immutable after process start.
type SourceConfig struct {
	Key         string       `toml:"key"`  // Fingerprint store key
	DisplayName string       `toml:"name"` // Tool name used in notifications
	FetchURL    string       `toml:"url"`  // Where the changelog is fetched from
	Link        string       `toml:"link"` // Canonical link included in notifications
	Style       SectionStyle `toml:"style"`

	// Keywords and ArticleLimit apply only to StyleHTMLArticleKeyword:
	// an article qualifies when its heading contains any keyword, and at
	// most ArticleLimit articles are scanned.
	Keywords     []string `toml:"keywords,omitempty"`
	ArticleLimit int      `toml:"article_limit,omitempty"`
}

// DefaultSources returns the built-in registry of monitored sources. The two
// Cloudflare entries share one fetched page, distinguished by heading
// keywords.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Key:         "claude-code",
			DisplayName: "Claude Code",
			FetchURL:    "https://raw.githubusercontent.com/anthropics/claude-code/main/CHANGELOG.md",
			Link:        "https://github.com/anthropics/claude-code/blob/main/CHANGELOG.md",
			Style:       StyleSimple,
		},
		{
			Key:         "ai-sdk",
			DisplayName: "AI SDK",
			FetchURL:    "https://raw.githubusercontent.com/vercel/ai/main/packages/ai/CHANGELOG.md",
			Link:        "https://github.com/vercel/ai/releases",
			Style:       StyleComplexFiltering,
		},
		{
			Key:         "viem",
			DisplayName: "viem",
			FetchURL:    "https://raw.githubusercontent.com/wevm/viem/main/src/CHANGELOG.md",
			Link:        "https://github.com/wevm/viem/blob/main/src/CHANGELOG.md",
			Style:       StyleStandard,
		},
		{
			Key:         "wagmi",
			DisplayName: "wagmi",
			FetchURL:    "https://raw.githubusercontent.com/wevm/wagmi/main/packages/core/CHANGELOG.md",
			Link:        "https://github.com/wevm/wagmi/releases",
			Style:       StyleComplexFiltering,
		},
		{
			Key:         "cursor",
			DisplayName: "Cursor",
			FetchURL:    "https://cursor.com/changelog",
			Link:        "https://cursor.com/changelog",
			Style:       StyleHTMLHeadingSiblings,
		},
		{
			Key:          "cloudflare-d1",
			DisplayName:  "Cloudflare D1",
			FetchURL:     "https://developers.cloudflare.com/changelog/",
			Link:         "https://developers.cloudflare.com/changelog/",
			Style:        StyleHTMLArticleKeyword,
			Keywords:     []string{"d1"},
			ArticleLimit: 10,
		},
		{
			Key:          "workers-ai",
			DisplayName:  "Workers AI",
			FetchURL:     "https://developers.cloudflare.com/changelog/",
			Link:         "https://developers.cloudflare.com/changelog/",
			Style:        StyleHTMLArticleKeyword,
			Keywords:     []string{"workers ai", "workers-ai"},
			ArticleLimit: 5,
		},
	}
}
