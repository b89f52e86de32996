package etlrun

import (
	"context"
	"time"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/etlrun"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for ETL run bookkeeping.
type Usecase interface {
	// Begin records the start of an aggregation cycle.
	Begin(ctx context.Context, source string) (*etlrun.Run, error)

	// Complete finalizes a run as success, carrying the window upper
	// bound forward as the next watermark.
	Complete(ctx context.Context, id int64, records int64, completedAt time.Time) error

	// Fail finalizes a run as failed.
	Fail(ctx context.Context, id int64) error

	// GetWatermark returns the completed_at of the latest successful run
	// for a source, or nil when no run has succeeded yet.
	GetWatermark(ctx context.Context, source string) (*time.Time, error)
}
