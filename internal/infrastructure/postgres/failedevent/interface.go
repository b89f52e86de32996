package failedevent

import "context"

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// FailedEventRepository defines the interface for dead letter persistence.
type FailedEventRepository interface {
	Store(ctx context.Context, event *FailedEvent) error
}
