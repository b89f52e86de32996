package etlrun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// Repository represents the repository for ETL run bookkeeping.
type Repository struct {
	client postgresql.PostgreSQLClient
}

// NewRepository creates a new etl run repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Create inserts a new run in running status.
func (r *Repository) Create(ctx context.Context, source string) (*Run, error) {
	query := `INSERT INTO etl_runs (source, status)
			  VALUES ($1, $2)
			  RETURNING id, source, records_processed, status, started_at, completed_at`

	run := &Run{}
	err := r.client.QueryRow(ctx, query, source, StatusRunning).Scan(
		&run.ID, &run.Source, &run.RecordsProcessed, &run.Status,
		&run.StartedAt, &run.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create etl run: %w", err)
	}

	return run, nil
}

// MarkSuccess finalizes a run as success. completedAt carries the window
// upper bound so the next cycle resumes from it.
func (r *Repository) MarkSuccess(ctx context.Context, id int64, records int64, completedAt time.Time) error {
	query := `UPDATE etl_runs
			  SET status = $1, records_processed = $2, completed_at = $3
			  WHERE id = $4`

	tag, err := r.client.Exec(ctx, query, StatusSuccess, records, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark etl run success: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("etl run %d not found", id)
	}

	return nil
}

// MarkFailed finalizes a run as failed. completed_at stays NULL so the
// row never participates in watermark resolution.
func (r *Repository) MarkFailed(ctx context.Context, id int64) error {
	query := `UPDATE etl_runs SET status = $1 WHERE id = $2`

	tag, err := r.client.Exec(ctx, query, StatusFailed, id)
	if err != nil {
		return fmt.Errorf("failed to mark etl run failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("etl run %d not found", id)
	}

	return nil
}

// GetLatestSuccess returns the latest successful run for a source.
func (r *Repository) GetLatestSuccess(ctx context.Context, source string) (*Run, error) {
	query := `SELECT id, source, records_processed, status, started_at, completed_at
			  FROM etl_runs
			  WHERE source = $1 AND status = $2
			  ORDER BY completed_at DESC
			  LIMIT 1`

	run := &Run{}
	err := r.client.QueryRow(ctx, query, source, StatusSuccess).Scan(
		&run.ID, &run.Source, &run.RecordsProcessed, &run.Status,
		&run.StartedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest successful etl run: %w", err)
	}

	return run, nil
}
