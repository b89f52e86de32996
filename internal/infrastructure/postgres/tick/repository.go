package tick

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// Repository represents the repository for tick data.
type Repository struct {
	client postgresql.PostgreSQLClient
}

// NewRepository creates a new tick repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store appends a tick and fills in its assigned id.
func (r *Repository) Store(ctx context.Context, tick *Tick) error {
	query := `INSERT INTO stock_ticks (symbol, price, volume, event_time)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	err := r.client.QueryRow(ctx, query,
		tick.Symbol, tick.Price, tick.Volume, tick.EventTime).
		Scan(&tick.ID, &tick.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store tick: %w", err)
	}

	return nil
}

// StoreBatch appends a batch of ticks.
func (r *Repository) StoreBatch(ctx context.Context, ticks []*Tick) error {
	if len(ticks) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"stock_ticks"},
		[]string{"symbol", "price", "volume", "event_time"},
		pgx.CopyFromSlice(len(ticks), func(i int) ([]any, error) {
			tick := ticks[i]
			return []any{
				tick.Symbol,
				tick.Price,
				tick.Volume,
				tick.EventTime,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy ticks: %w", err)
	}

	return nil
}

// GetRange retrieves every tick with event_time in [from, to), ordered by
// event_time then id ascending. The aggregator's tie-break rules depend on
// this ordering.
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*Tick, error) {
	query := `SELECT id, symbol, price, volume, event_time, created_at
			  FROM stock_ticks
			  WHERE event_time >= $1 AND event_time < $2
			  ORDER BY event_time ASC, id ASC`

	rows, err := r.client.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query tick range: %w", err)
	}
	defer rows.Close()

	return scanTicks(rows)
}

// GetByFilter retrieves ticks by filter, newest first.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error) {
	query := "SELECT id, symbol, price, volume, event_time, created_at FROM stock_ticks WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND event_time >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND event_time < $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY event_time DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticks: %w", err)
	}
	defer rows.Close()

	return scanTicks(rows)
}

// GetEarliestEventTime returns the event time of the oldest stored tick,
// or nil when the store is empty.
func (r *Repository) GetEarliestEventTime(ctx context.Context) (*time.Time, error) {
	query := `SELECT MIN(event_time) FROM stock_ticks`

	var earliest *time.Time
	if err := r.client.QueryRow(ctx, query).Scan(&earliest); err != nil {
		return nil, fmt.Errorf("failed to get earliest event time: %w", err)
	}

	return earliest, nil
}

// GetSymbols returns the distinct symbols seen so far.
func (r *Repository) GetSymbols(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT symbol FROM stock_ticks ORDER BY symbol`

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return symbols, nil
}

// GetSummary aggregates ticks for a symbol since the given time.
// Returns nil when the window holds no ticks.
func (r *Repository) GetSummary(ctx context.Context, symbol string, since time.Time) (*Summary, error) {
	query := `SELECT
				COUNT(*),
				COALESCE(ROUND(AVG(price)::numeric, 4), 0),
				COALESCE(MIN(price), 0),
				COALESCE(MAX(price), 0),
				COALESCE(SUM(COALESCE(volume, 0)), 0),
				COALESCE(MIN(event_time), 'epoch'::timestamptz),
				COALESCE(MAX(event_time), 'epoch'::timestamptz)
			  FROM stock_ticks
			  WHERE symbol = $1 AND event_time >= $2`

	summary := &Summary{}
	err := r.client.QueryRow(ctx, query, symbol, since).Scan(
		&summary.Count, &summary.AvgPrice, &summary.MinPrice, &summary.MaxPrice,
		&summary.SumVolume, &summary.StartTime, &summary.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get tick summary: %w", err)
	}

	if summary.Count == 0 {
		return nil, nil
	}

	return summary, nil
}

// Count returns the number of stored ticks.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.client.QueryRow(ctx, `SELECT COUNT(*) FROM stock_ticks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ticks: %w", err)
	}
	return count, nil
}

func scanTicks(rows postgresql.RowsInterface) ([]*Tick, error) {
	var ticks []*Tick
	for rows.Next() {
		tick := &Tick{}
		err := rows.Scan(&tick.ID, &tick.Symbol, &tick.Price, &tick.Volume, &tick.EventTime, &tick.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tick: %w", err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ticks, nil
}
