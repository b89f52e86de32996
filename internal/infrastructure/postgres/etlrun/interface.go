package etlrun

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// RunRepository defines the interface for etl_runs persistence.
type RunRepository interface {
	// Create inserts a new run in running status and returns it.
	Create(ctx context.Context, source string) (*Run, error)

	// MarkSuccess finalizes a run with the processed record count and the
	// window upper bound it covered.
	MarkSuccess(ctx context.Context, id int64, records int64, completedAt time.Time) error

	// MarkFailed finalizes a run as failed.
	MarkFailed(ctx context.Context, id int64) error

	// GetLatestSuccess returns the most recently completed successful run
	// for a source, or nil when the source has never succeeded.
	GetLatestSuccess(ctx context.Context, source string) (*Run, error)
}
