package bar

import (
	"context"
	"time"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/bar"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for the bar usecase.
type Usecase interface {
	UpsertBars(ctx context.Context, bars []*bar.Bar) error
	GetBars(ctx context.Context, filter bar.Filter) ([]*bar.Bar, error)
	GetBarSummary(ctx context.Context, symbol string, since time.Time) (*bar.Summary, error)
	GetMovers(ctx context.Context, since time.Time, limit int) ([]*bar.Mover, error)
	CountBars(ctx context.Context) (int64, error)
}
