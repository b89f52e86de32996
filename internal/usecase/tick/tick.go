package tick

import (
	"context"
	"time"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/tick"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
)

// Usecase is the usecase for raw ticks.
type Usecase struct {
	tickRepository tick.TickRepository
}

// NewUsecase creates a new tick usecase.
func NewUsecase(tickRepository tick.TickRepository) *Usecase {
	return &Usecase{tickRepository: tickRepository}
}

// StoreTick stores a single tick.
func (u *Usecase) StoreTick(ctx context.Context, t *tick.Tick) error {
	if err := u.tickRepository.Store(ctx, t); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrTickStore)
	}
	return nil
}

// StoreTicks stores a batch of ticks.
func (u *Usecase) StoreTicks(ctx context.Context, ticks []*tick.Tick) error {
	if err := u.tickRepository.StoreBatch(ctx, ticks); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrTickStore)
	}
	return nil
}

// GetTicksRange returns ticks in [from, to) in event time order.
func (u *Usecase) GetTicksRange(ctx context.Context, from, to time.Time) ([]*tick.Tick, error) {
	ticks, err := u.tickRepository.GetRange(ctx, from, to)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return ticks, nil
}

// GetTicks returns ticks matching the filter, newest first.
func (u *Usecase) GetTicks(ctx context.Context, filter tick.Filter) ([]*tick.Tick, error) {
	ticks, err := u.tickRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return ticks, nil
}

// GetEarliestEventTime returns the event time of the oldest stored tick.
func (u *Usecase) GetEarliestEventTime(ctx context.Context) (*time.Time, error) {
	earliest, err := u.tickRepository.GetEarliestEventTime(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return earliest, nil
}

// GetSymbols returns the distinct symbols seen so far.
func (u *Usecase) GetSymbols(ctx context.Context) ([]string, error) {
	symbols, err := u.tickRepository.GetSymbols(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return symbols, nil
}

// GetTickSummary returns a rollup for one symbol since the given time.
func (u *Usecase) GetTickSummary(ctx context.Context, symbol string, since time.Time) (*tick.Summary, error) {
	summary, err := u.tickRepository.GetSummary(ctx, symbol, since)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return summary, nil
}

// CountTicks returns the number of stored ticks.
func (u *Usecase) CountTicks(ctx context.Context) (int64, error) {
	count, err := u.tickRepository.Count(ctx)
	if err != nil {
		return 0, errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return count, nil
}
