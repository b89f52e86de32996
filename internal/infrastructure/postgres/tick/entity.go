package tick

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tick represents a single raw price observation for a symbol.
// Rows are append-only; the aggregator only ever reads them.
type Tick struct {
	ID        int64
	Symbol    string
	Price     decimal.Decimal
	Volume    *int64
	EventTime time.Time
	CreatedAt time.Time
}

// Filter represents the filter criteria for tick queries.
type Filter struct {
	Symbol string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Summary aggregates ticks for one symbol over a window.
type Summary struct {
	Count     int64
	AvgPrice  decimal.Decimal
	MinPrice  decimal.Decimal
	MaxPrice  decimal.Decimal
	SumVolume int64
	StartTime time.Time
	EndTime   time.Time
}
