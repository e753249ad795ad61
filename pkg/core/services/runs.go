package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/pkg/db"
)

// DefaultRunLimit caps a run-history listing when no limit is given
const DefaultRunLimit = 20

// RunLister reads back persisted allocation runs
type RunLister interface {
	ListAllocationRuns(ctx context.Context, limit int) ([]db.AllocationRun, error)
}

// ListRuns returns the most recent allocation runs, newest first
func ListRuns(ctx context.Context, store RunLister, logger *zap.Logger, limit int) ([]db.AllocationRun, error) {
	if store == nil {
		return nil, fmt.Errorf("no run store configured")
	}
	if limit <= 0 {
		limit = DefaultRunLimit
	}

	runs, err := store.ListAllocationRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation runs: %w", err)
	}

	logger.Debug("Loaded run history", zap.Int("count", len(runs)))
	return runs, nil
}
