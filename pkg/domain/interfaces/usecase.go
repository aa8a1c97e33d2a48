package interfaces

import (
	"context"

	"github.com/t-okuda/relwatch/pkg/domain/model"
)

// CheckUseCase defines the interface for per-source change detection.
type CheckUseCase interface {
	// CheckSource fetches, parses and fingerprints one source. It never
	// returns an error: failures are folded into the result's Status.
	CheckSource(ctx context.Context, src model.SourceConfig) *model.CheckResult
}
