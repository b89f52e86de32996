package bar

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// upsertSQL replaces every aggregate column on conflict. The values are
// recomputed over the full tick set of the bucket, so replaying the same
// upsert any number of times leaves the row unchanged.
const upsertSQL = `INSERT INTO stock_bars_1m (symbol, bucket_start, open, high, low, close, volume_sum, tick_count)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (symbol, bucket_start) DO UPDATE SET
		open       = EXCLUDED.open,
		high       = EXCLUDED.high,
		low        = EXCLUDED.low,
		close      = EXCLUDED.close,
		volume_sum = EXCLUDED.volume_sum,
		tick_count = EXCLUDED.tick_count`

// Repository represents the repository for aggregated bar data.
type Repository struct {
	client postgresql.PostgreSQLClient
}

// NewRepository creates a new bar repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Upsert inserts or replaces the bar keyed by (symbol, bucket_start).
func (r *Repository) Upsert(ctx context.Context, bar *Bar) error {
	_, err := r.client.Exec(ctx, upsertSQL,
		bar.Symbol, bar.BucketStart, bar.Open, bar.High, bar.Low, bar.Close,
		bar.VolumeSum, bar.TickCount)
	if err != nil {
		return fmt.Errorf("failed to upsert bar: %w", err)
	}

	return nil
}

// UpsertBatch upserts a batch of bars in a single round trip.
// Each row upsert is atomic on its own; buckets are independent, so no
// surrounding transaction is needed.
func (r *Repository) UpsertBatch(ctx context.Context, bars []*Bar) error {
	if len(bars) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, bar := range bars {
		batch.Queue(upsertSQL,
			bar.Symbol, bar.BucketStart, bar.Open, bar.High, bar.Low, bar.Close,
			bar.VolumeSum, bar.TickCount)
	}

	results := r.client.SendBatch(ctx, batch)
	defer results.Close()

	for range bars {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert bar batch: %w", err)
		}
	}

	return nil
}

// GetByFilter retrieves bars by filter, newest bucket first.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Bar, error) {
	query := "SELECT id, symbol, bucket_start, open, high, low, close, volume_sum, tick_count, created_at FROM stock_bars_1m WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND bucket_start >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND bucket_start < $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY bucket_start DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bars: %w", err)
	}
	defer rows.Close()

	var bars []*Bar
	for rows.Next() {
		bar := &Bar{}
		err := rows.Scan(&bar.ID, &bar.Symbol, &bar.BucketStart, &bar.Open, &bar.High,
			&bar.Low, &bar.Close, &bar.VolumeSum, &bar.TickCount, &bar.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bar: %w", err)
		}
		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return bars, nil
}

// GetSummary rolls up bars for a symbol since the given time.
// Returns nil when the window holds no bars.
func (r *Repository) GetSummary(ctx context.Context, symbol string, since time.Time) (*Summary, error) {
	query := `SELECT
				COUNT(*),
				COALESCE((array_agg(open ORDER BY bucket_start ASC))[1], 0),
				COALESCE(MAX(high), 0),
				COALESCE(MIN(low), 0),
				COALESCE((array_agg(close ORDER BY bucket_start DESC))[1], 0),
				COALESCE(SUM(volume_sum), 0),
				COALESCE(SUM(tick_count), 0),
				COALESCE(MIN(bucket_start), 'epoch'::timestamptz),
				COALESCE(MAX(bucket_start), 'epoch'::timestamptz)
			  FROM stock_bars_1m
			  WHERE symbol = $1 AND bucket_start >= $2`

	summary := &Summary{}
	err := r.client.QueryRow(ctx, query, symbol, since).Scan(
		&summary.BarCount, &summary.PeriodOpen, &summary.PeriodHigh, &summary.PeriodLow,
		&summary.PeriodClose, &summary.TotalVolume, &summary.TotalTicks,
		&summary.StartTime, &summary.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get bar summary: %w", err)
	}

	if summary.BarCount == 0 {
		return nil, nil
	}

	return summary, nil
}

// GetMovers returns the symbols with the largest absolute percentage change
// between their first open and last close since the given time.
func (r *Repository) GetMovers(ctx context.Context, since time.Time, limit int) ([]*Mover, error) {
	query := `WITH first_bar AS (
				SELECT DISTINCT ON (symbol) symbol, open
				FROM stock_bars_1m
				WHERE bucket_start >= $1
				ORDER BY symbol, bucket_start ASC
			),
			last_bar AS (
				SELECT DISTINCT ON (symbol) symbol, close
				FROM stock_bars_1m
				WHERE bucket_start >= $1
				ORDER BY symbol, bucket_start DESC
			)
			SELECT
				f.symbol,
				f.open,
				l.close,
				COALESCE(ROUND(((l.close - f.open) / NULLIF(f.open, 0) * 100)::numeric, 4), 0) AS change_pct
			FROM first_bar f
			JOIN last_bar l ON f.symbol = l.symbol
			ORDER BY ABS(COALESCE(((l.close - f.open) / NULLIF(f.open, 0) * 100), 0)) DESC
			LIMIT $2`

	rows, err := r.client.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query movers: %w", err)
	}
	defer rows.Close()

	var movers []*Mover
	for rows.Next() {
		mover := &Mover{}
		if err := rows.Scan(&mover.Symbol, &mover.Open, &mover.Close, &mover.ChangePct); err != nil {
			return nil, fmt.Errorf("failed to scan mover: %w", err)
		}
		movers = append(movers, mover)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return movers, nil
}

// Count returns the number of stored bars.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.client.QueryRow(ctx, `SELECT COUNT(*) FROM stock_bars_1m`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bars: %w", err)
	}
	return count, nil
}
