package bar

import (
	"context"
	"time"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/bar"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
)

// Usecase is the usecase for aggregated bars.
type Usecase struct {
	barRepository bar.BarRepository
}

// NewUsecase creates a new bar usecase.
func NewUsecase(barRepository bar.BarRepository) *Usecase {
	return &Usecase{barRepository: barRepository}
}

// UpsertBars upserts a batch of bars keyed by (symbol, bucket_start).
func (u *Usecase) UpsertBars(ctx context.Context, bars []*bar.Bar) error {
	if err := u.barRepository.UpsertBatch(ctx, bars); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrBarUpsert)
	}
	return nil
}

// GetBars returns bars matching the filter, newest bucket first.
func (u *Usecase) GetBars(ctx context.Context, filter bar.Filter) ([]*bar.Bar, error) {
	bars, err := u.barRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return bars, nil
}

// GetBarSummary returns a rollup of bars for one symbol since the given time.
func (u *Usecase) GetBarSummary(ctx context.Context, symbol string, since time.Time) (*bar.Summary, error) {
	summary, err := u.barRepository.GetSummary(ctx, symbol, since)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return summary, nil
}

// GetMovers returns the symbols with the largest percentage moves since the given time.
func (u *Usecase) GetMovers(ctx context.Context, since time.Time, limit int) ([]*bar.Mover, error) {
	movers, err := u.barRepository.GetMovers(ctx, since, limit)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return movers, nil
}

// CountBars returns the number of stored bars.
func (u *Usecase) CountBars(ctx context.Context) (int64, error) {
	count, err := u.barRepository.Count(ctx)
	if err != nil {
		return 0, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return count, nil
}
