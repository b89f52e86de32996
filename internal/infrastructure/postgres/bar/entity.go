package bar

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is a derived OHLCV aggregate for one (symbol, bucket_start) pair.
// Exactly one row exists per pair; re-aggregation replaces the row in place.
type Bar struct {
	ID          int64
	Symbol      string
	BucketStart time.Time
	Open        decimal.Decimal
	High        decimal.Decimal
	Low         decimal.Decimal
	Close       decimal.Decimal
	VolumeSum   int64
	TickCount   int32
	CreatedAt   time.Time
}

// Filter represents the filter criteria for bar queries.
type Filter struct {
	Symbol string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Summary aggregates bars for one symbol over a window.
type Summary struct {
	BarCount    int64
	PeriodOpen  decimal.Decimal
	PeriodHigh  decimal.Decimal
	PeriodLow   decimal.Decimal
	PeriodClose decimal.Decimal
	TotalVolume int64
	TotalTicks  int64
	StartTime   time.Time
	EndTime     time.Time
}

// Mover describes a symbol's percentage move over a window.
type Mover struct {
	Symbol    string          `json:"symbol"`
	Open      decimal.Decimal `json:"open"`
	Close     decimal.Decimal `json:"close"`
	ChangePct decimal.Decimal `json:"change_pct"`
}
