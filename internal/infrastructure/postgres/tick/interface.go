package tick

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// TickRepository is the persistence contract for raw ticks.
type TickRepository interface {
	Store(ctx context.Context, tick *Tick) error
	StoreBatch(ctx context.Context, ticks []*Tick) error
	GetRange(ctx context.Context, from, to time.Time) ([]*Tick, error)
	GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error)
	GetEarliestEventTime(ctx context.Context) (*time.Time, error)
	GetSymbols(ctx context.Context) ([]string, error)
	GetSummary(ctx context.Context, symbol string, since time.Time) (*Summary, error)
	Count(ctx context.Context) (int64, error)
}
