package failedevent

import (
	"context"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/infrastructure/postgres/failedevent"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for dead letter recording.
type Usecase interface {
	Record(ctx context.Context, event *failedevent.FailedEvent) error
}
