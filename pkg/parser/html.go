package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"

	"github.com/t-okuda/relwatch/pkg/domain/model"
)

var (
	// 1.2: or 1.2.3: version prefix on patch entries.
	patchVersionRe = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?:\s*`)
	// "Month Day(st/nd/rd/th), Year" publication dates.
	articleDateRe = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:st|nd|rd|th)?,\s+(\d{4})`)
)

const articleBodyLimit = 300

// ParseHeadingSiblings extracts the latest release block from a changelog
// page laid out as a top-level heading followed by sibling content. The
// heading text is the release title; sub-headings among the siblings become
// bullets. Collapsible details sections titled "improvements" or "patches"
// contribute their list items as nested bullets, with patch entries losing
// a leading version prefix. Returns (nil, nil) when the page has no
// top-level heading.
func ParseHeadingSiblings(html string) (*model.ParsedRelease, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse HTML document")
	}

	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return nil, nil
	}
	title := strings.TrimSpace(heading.Text())

	siblings := headingSiblings(heading)

	var head strings.Builder
	head.WriteString(title + "\n")
	for _, s := range siblings {
		if s.Is("h2, h3") {
			if text := strings.TrimSpace(s.Text()); text != "" {
				head.WriteString("• " + text + "\n")
			}
		}
	}

	improvements := detailsBlock(siblings, "improvements", false)
	patches := detailsBlock(siblings, "patches", true)

	blocks := []string{strings.TrimRight(head.String(), "\n")}
	if improvements != "" {
		blocks = append(blocks, improvements)
	}
	if patches != "" {
		blocks = append(blocks, patches)
	}

	return &model.ParsedRelease{
		VersionLabel: title,
		BulletBlock:  strings.Join(blocks, "\n\n"),
	}, nil
}

// headingSiblings collects the elements following h up to the next top-level
// heading or the end of the document.
func headingSiblings(h *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	for s := h.Next(); s.Length() > 0; s = s.Next() {
		if s.Is("h1") {
			break
		}
		out = append(out, s)
	}
	return out
}

// detailsBlock enumerates list items of collapsible details elements whose
// summary contains the given word.
func detailsBlock(siblings []*goquery.Selection, word string, stripVersion bool) string {
	var block strings.Builder
	visit := func(_ int, d *goquery.Selection) {
		summary := d.Find("summary").First()
		if !strings.Contains(strings.ToLower(summary.Text()), word) {
			return
		}
		if block.Len() == 0 {
			block.WriteString(strings.TrimSpace(summary.Text()) + "\n")
		}
		d.Find("li").Each(func(_ int, li *goquery.Selection) {
			text := strings.TrimSpace(li.Text())
			if stripVersion {
				text = patchVersionRe.ReplaceAllString(text, "")
			}
			if text != "" {
				block.WriteString("  • " + text + "\n")
			}
		})
	}
	for _, s := range siblings {
		if s.Is("details") {
			visit(0, s)
		}
		s.Find("details").Each(visit)
	}
	return strings.TrimRight(block.String(), "\n")
}

// ParseArticleKeyword scans article elements of a multi-product changelog
// page and returns the first one whose heading contains any of the given
// keywords. At most limit articles are examined. The result carries the
// heading as title, a publication date parsed from nearby paragraph text
// (today's date when absent), and a body built from paragraph and list-item
// descendants truncated to 300 characters. Returns (nil, nil) when no
// article qualifies.
func ParseArticleKeyword(html string, keywords []string, limit int, now func() time.Time) (*model.ParsedRelease, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse HTML document")
	}
	if now == nil {
		now = time.Now
	}

	var found *model.ParsedRelease
	doc.Find("article").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		title := strings.TrimSpace(a.Find("h1, h2, h3").First().Text())
		if !containsAnyKeyword(title, keywords) {
			return true
		}

		date := now()
		a.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			if d, ok := parseArticleDate(p.Text()); ok {
				date = d
				return false
			}
			return true
		})

		var parts []string
		a.Find("p, li").Each(func(_ int, el *goquery.Selection) {
			if text := strings.TrimSpace(el.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		body := strings.Join(parts, "\n")
		if runes := []rune(body); len(runes) > articleBodyLimit {
			body = string(runes[:articleBodyLimit])
		}

		found = &model.ParsedRelease{
			VersionLabel: title,
			BulletBlock:  date.Format("2006-01-02") + "\n" + body,
		}
		return false
	})

	return found, nil
}

func containsAnyKeyword(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func parseArticleDate(text string) (time.Time, bool) {
	m := articleDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("January 2, 2006", m[1]+" "+m[2]+", "+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
