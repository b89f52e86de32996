package etlrun

import (
	"context"
	"time"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/etlrun"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
)

// Usecase is the usecase for ETL run bookkeeping.
type Usecase struct {
	runRepository etlrun.RunRepository
}

// NewUsecase creates a new etl run usecase.
func NewUsecase(runRepository etlrun.RunRepository) *Usecase {
	return &Usecase{runRepository: runRepository}
}

// Begin records the start of an aggregation cycle.
func (u *Usecase) Begin(ctx context.Context, source string) (*etlrun.Run, error) {
	run, err := u.runRepository.Create(ctx, source)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.ErrWatermark)
	}
	return run, nil
}

// Complete finalizes a run as success.
func (u *Usecase) Complete(ctx context.Context, id int64, records int64, completedAt time.Time) error {
	if err := u.runRepository.MarkSuccess(ctx, id, records, completedAt); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrWatermark)
	}
	return nil
}

// Fail finalizes a run as failed.
func (u *Usecase) Fail(ctx context.Context, id int64) error {
	if err := u.runRepository.MarkFailed(ctx, id); err != nil {
		return errors.TracerFromError(err).WithCode(errors.ErrWatermark)
	}
	return nil
}

// GetWatermark returns the completed_at of the latest successful run.
// A nil time means the source has never completed a run.
func (u *Usecase) GetWatermark(ctx context.Context, source string) (*time.Time, error) {
	run, err := u.runRepository.GetLatestSuccess(ctx, source)
	if err != nil {
		return nil, errors.TracerFromError(err).WithCode(errors.ErrWatermark)
	}
	if run == nil {
		return nil, nil
	}
	return run.CompletedAt, nil
}
