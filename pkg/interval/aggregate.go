package interval

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TickData carries the tick fields the aggregation fold needs.
// ID is the storage surrogate key, used only to break event-time ties.
type TickData struct {
	ID        int64
	Symbol    string
	Price     decimal.Decimal
	Volume    *int64
	EventTime time.Time
}

// BarData is an aggregated OHLCV bucket for one symbol.
type BarData struct {
	Symbol      string
	BucketStart time.Time
	Open        decimal.Decimal
	High        decimal.Decimal
	Low         decimal.Decimal
	Close       decimal.Decimal
	VolumeSum   int64
	TickCount   int32
}

type bucketKey struct {
	symbol      string
	bucketStart time.Time
}

type accumulator struct {
	openTick  TickData
	closeTick TickData
	high      decimal.Decimal
	low       decimal.Decimal
	volumeSum int64
	tickCount int32
}

// AggregateBuckets folds ticks into one BarData per (symbol, bucket).
// The result is independent of input order: open is the price of the tick
// with the earliest event time (ties broken by lowest id), close the price
// of the tick with the latest event time (ties broken by highest id).
// Nil volumes fold as zero. The returned slice is sorted by symbol then
// bucket start so callers upsert in a stable order.
func (i Interval) AggregateBuckets(ticks []TickData) []BarData {
	buckets := make(map[bucketKey]*accumulator)

	for _, tick := range ticks {
		key := bucketKey{
			symbol:      tick.Symbol,
			bucketStart: i.CalculateBucketTime(tick.EventTime),
		}

		acc, ok := buckets[key]
		if !ok {
			acc = &accumulator{
				openTick:  tick,
				closeTick: tick,
				high:      tick.Price,
				low:       tick.Price,
			}
			buckets[key] = acc
		} else {
			if earlier(tick, acc.openTick) {
				acc.openTick = tick
			}
			if later(tick, acc.closeTick) {
				acc.closeTick = tick
			}
			if tick.Price.GreaterThan(acc.high) {
				acc.high = tick.Price
			}
			if tick.Price.LessThan(acc.low) {
				acc.low = tick.Price
			}
		}

		if tick.Volume != nil {
			acc.volumeSum += *tick.Volume
		}
		acc.tickCount++
	}

	bars := make([]BarData, 0, len(buckets))
	for key, acc := range buckets {
		bars = append(bars, BarData{
			Symbol:      key.symbol,
			BucketStart: key.bucketStart,
			Open:        acc.openTick.Price,
			High:        acc.high,
			Low:         acc.low,
			Close:       acc.closeTick.Price,
			VolumeSum:   acc.volumeSum,
			TickCount:   acc.tickCount,
		})
	}

	sort.Slice(bars, func(a, b int) bool {
		if bars[a].Symbol != bars[b].Symbol {
			return bars[a].Symbol < bars[b].Symbol
		}
		return bars[a].BucketStart.Before(bars[b].BucketStart)
	})

	return bars
}

// earlier reports whether a precedes b by (event_time asc, id asc).
func earlier(a, b TickData) bool {
	if !a.EventTime.Equal(b.EventTime) {
		return a.EventTime.Before(b.EventTime)
	}
	return a.ID < b.ID
}

// later reports whether a follows b by (event_time asc, id desc on ties).
func later(a, b TickData) bool {
	if !a.EventTime.Equal(b.EventTime) {
		return a.EventTime.After(b.EventTime)
	}
	return a.ID > b.ID
}
