package tick

import (
	"context"
	"time"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for the tick usecase.
type Usecase interface {
	StoreTick(ctx context.Context, tick *tick.Tick) error
	StoreTicks(ctx context.Context, ticks []*tick.Tick) error
	GetTicksRange(ctx context.Context, from, to time.Time) ([]*tick.Tick, error)
	GetTicks(ctx context.Context, filter tick.Filter) ([]*tick.Tick, error)
	GetEarliestEventTime(ctx context.Context) (*time.Time, error)
	GetSymbols(ctx context.Context) ([]string, error)
	GetTickSummary(ctx context.Context, symbol string, since time.Time) (*tick.Summary, error)
	CountTicks(ctx context.Context) (int64, error)
}
