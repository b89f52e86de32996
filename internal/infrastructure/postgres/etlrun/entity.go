package etlrun

import "time"

// Run statuses. A run starts as running and is finalized exactly once.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Run represents a single aggregation cycle recorded in etl_runs.
// CompletedAt doubles as the watermark for success rows: it holds the
// exclusive upper bound of the window the run covered, not wall time.
type Run struct {
	ID               int64      `json:"id"`
	Source           string     `json:"source"`
	RecordsProcessed int64      `json:"records_processed"`
	Status           string     `json:"status"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}
