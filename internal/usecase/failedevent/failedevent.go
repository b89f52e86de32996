package failedevent

import (
	"context"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/failedevent"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/errors"
)

// Usecase is the usecase for dead letter recording.
type Usecase struct {
	failedEventRepository failedevent.FailedEventRepository
}

// NewUsecase creates a new failed event usecase.
func NewUsecase(failedEventRepository failedevent.FailedEventRepository) *Usecase {
	return &Usecase{failedEventRepository: failedEventRepository}
}

// Record persists a dead-lettered event.
func (u *Usecase) Record(ctx context.Context, event *failedevent.FailedEvent) error {
	if err := u.failedEventRepository.Store(ctx, event); err != nil {
		return errors.TracerFromError(err).WithCode(errors.GeneralRepositoryError)
	}
	return nil
}
