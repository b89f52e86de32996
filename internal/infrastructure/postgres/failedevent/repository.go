package failedevent

import (
	"context"
	"fmt"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// Repository represents the repository for dead-lettered events.
type Repository struct {
	client postgresql.PostgreSQLClient
}

// NewRepository creates a new failed event repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store persists a dead-lettered event.
func (r *Repository) Store(ctx context.Context, event *FailedEvent) error {
	query := `INSERT INTO failed_events (source, topic, partition_id, offset_id, raw_value, error_message)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`

	err := r.client.QueryRow(ctx, query,
		event.Source, event.Topic, event.Partition, event.Offset,
		event.RawValue, event.ErrorMessage).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store failed event: %w", err)
	}

	return nil
}
