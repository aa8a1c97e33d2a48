package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
	"github.com/t-okuda/relwatch/pkg/domain/model"
	"github.com/t-okuda/relwatch/pkg/parser"
)

type checkUseCase struct {
	fetcher interfaces.Fetcher
	store   interfaces.Store
	now     func() time.Time
}

// NewCheck creates a new instance of CheckUseCase.
func NewCheck(fetcher interfaces.Fetcher, store interfaces.Store) interfaces.CheckUseCase {
	return &checkUseCase{
		fetcher: fetcher,
		store:   store,
		now:     time.Now,
	}
}

// CheckSource fetches one source's changelog, extracts the latest release
// section, and compares its fingerprint against the stored one. The store is
// written only on a detected change; fetch and parse failures resolve to a
// failed result and never propagate.
func (uc *checkUseCase) CheckSource(ctx context.Context, src model.SourceConfig) *model.CheckResult {
	logger := ctxlog.From(ctx)

	body, err := uc.fetcher.Fetch(ctx, src.FetchURL)
	if err != nil {
		logger.Warn("Failed to fetch changelog",
			"source", src.Key,
			"url", src.FetchURL,
			"error", err,
		)
		return &model.CheckResult{Source: src, Status: model.StatusFailed, Err: err}
	}

	rel, err := uc.parse(src, body)
	if err != nil {
		logger.Warn("Failed to parse changelog",
			"source", src.Key,
			"error", err,
		)
		return &model.CheckResult{Source: src, Status: model.StatusFailed, Err: err}
	}
	if rel == nil {
		// Not an error: the document has no qualifying section right now.
		logger.Debug("No release section found", "source", src.Key)
		return &model.CheckResult{Source: src, Status: model.StatusUnchanged}
	}

	fp := Fingerprint(rel)

	// A read failure falls back to the default so the check still runs to
	// completion; the empty default never equals a real fingerprint, so
	// the first run for a source always reports a change.
	prev, err := uc.store.GetValue(ctx, src.Key, "")
	if err != nil {
		logger.Warn("Failed to read stored fingerprint, treating as new",
			"source", src.Key,
			"error", err,
		)
		prev = ""
	}

	if prev == fp {
		logger.Debug("No change detected",
			"source", src.Key,
			"version", rel.VersionLabel,
		)
		return &model.CheckResult{Source: src, Status: model.StatusUnchanged}
	}

	if err := uc.store.SetValue(ctx, src.Key, fp); err != nil {
		logger.Error("Failed to persist fingerprint",
			"source", src.Key,
			"error", err,
		)
	}

	logger.Info("New release detected",
		"source", src.Key,
		"version", rel.VersionLabel,
	)

	msg := FormatNotification(src.DisplayName, strings.TrimRight(rel.BulletBlock, "\n"), src.Link)
	return &model.CheckResult{Source: src, Status: model.StatusUpdated, Message: msg}
}

func (uc *checkUseCase) parse(src model.SourceConfig, body string) (*model.ParsedRelease, error) {
	switch src.Style {
	case model.StyleSimple:
		return parser.ParseSimple(body), nil
	case model.StyleStandard:
		return parser.ParseStandard(body), nil
	case model.StyleComplexFiltering:
		return parser.ParseComplexFiltering(body), nil
	case model.StyleHTMLHeadingSiblings:
		return parser.ParseHeadingSiblings(body)
	case model.StyleHTMLArticleKeyword:
		return parser.ParseArticleKeyword(body, src.Keywords, src.ArticleLimit, uc.now)
	default:
		return nil, goerr.New("unknown section style", goerr.V("style", src.Style))
	}
}
