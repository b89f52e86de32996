package bar

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// BarRepository is the persistence contract for aggregated bars.
type BarRepository interface {
	Upsert(ctx context.Context, bar *Bar) error
	UpsertBatch(ctx context.Context, bars []*Bar) error
	GetByFilter(ctx context.Context, filter Filter) ([]*Bar, error)
	GetSummary(ctx context.Context, symbol string, since time.Time) (*Summary, error)
	GetMovers(ctx context.Context, since time.Time, limit int) ([]*Mover, error)
	Count(ctx context.Context) (int64, error)
}
