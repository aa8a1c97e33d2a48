package usecase

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"

	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
	"github.com/t-okuda/relwatch/pkg/domain/model"
	"github.com/t-okuda/relwatch/pkg/utils/async"
)

// Runner drives one full check cycle: fan out one task per source, join all
// of them, then deliver notifications for the changed sources sequentially.
type Runner struct {
	check    interfaces.CheckUseCase
	notifier interfaces.Notifier
	sources  []model.SourceConfig
}

// NewRunner creates a Runner over the given sources.
func NewRunner(check interfaces.CheckUseCase, notifier interfaces.Notifier, sources []model.SourceConfig) *Runner {
	return &Runner{
		check:    check,
		notifier: notifier,
		sources:  sources,
	}
}

// RunOnce checks every source and sends a notification per changed source.
// Individual failures are isolated per source; the cycle always completes.
func (r *Runner) RunOnce(ctx context.Context) *model.RunSummary {
	runID := uuid.NewString()
	logger := ctxlog.From(ctx).With("run_id", runID)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Starting check cycle", "sources", len(r.sources))

	results := make([]model.CheckResult, len(r.sources))
	tasks := make([]func(ctx context.Context) error, len(r.sources))
	for i, src := range r.sources {
		tasks[i] = func(ctx context.Context) error {
			results[i] = *r.check.CheckSource(ctx, src)
			return nil
		}
	}
	async.RunAll(ctx, tasks)

	summary := &model.RunSummary{Results: results}

	for _, res := range summary.Results {
		switch res.Status {
		case model.StatusFailed:
			if res.Err != nil {
				sentry.CaptureException(res.Err)
			}
		case model.StatusUpdated:
			if err := r.notifier.Send(ctx, res.Message); err != nil {
				// At-most-once: the fingerprint is already persisted, a
				// failed delivery is not re-announced next cycle.
				logger.Error("Failed to send notification",
					"source", res.Source.Key,
					"error", err,
				)
			}
		}
	}

	logger.Info("Check cycle complete",
		"updated", summary.Count(model.StatusUpdated),
		"unchanged", summary.Count(model.StatusUnchanged),
		"failed", summary.Count(model.StatusFailed),
	)

	return summary
}
