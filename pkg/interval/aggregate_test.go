package interval

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vol(v int64) *int64 {
	return &v
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregateBuckets_SingleBucket(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ticks := []TickData{
		{ID: 1, Symbol: "AAPL", Price: price("190.10"), Volume: vol(1000), EventTime: base.Add(5 * time.Second)},
		{ID: 2, Symbol: "AAPL", Price: price("190.55"), Volume: vol(2000), EventTime: base.Add(20 * time.Second)},
		{ID: 3, Symbol: "AAPL", Price: price("189.80"), Volume: vol(500), EventTime: base.Add(40 * time.Second)},
		{ID: 4, Symbol: "AAPL", Price: price("190.25"), Volume: vol(1500), EventTime: base.Add(59 * time.Second)},
	}

	bars := iv.AggregateBuckets(ticks)
	require.Len(t, bars, 1)

	bar := bars[0]
	assert.Equal(t, "AAPL", bar.Symbol)
	assert.True(t, bar.BucketStart.Equal(base))
	assert.True(t, bar.Open.Equal(price("190.10")), "open %s", bar.Open)
	assert.True(t, bar.High.Equal(price("190.55")), "high %s", bar.High)
	assert.True(t, bar.Low.Equal(price("189.80")), "low %s", bar.Low)
	assert.True(t, bar.Close.Equal(price("190.25")), "close %s", bar.Close)
	assert.Equal(t, int64(5000), bar.VolumeSum)
	assert.Equal(t, int32(4), bar.TickCount)
}

func TestAggregateBuckets_MultipleSymbolsAndBuckets(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ticks := []TickData{
		{ID: 1, Symbol: "MSFT", Price: price("415.00"), Volume: vol(100), EventTime: base.Add(10 * time.Second)},
		{ID: 2, Symbol: "AAPL", Price: price("190.00"), Volume: vol(200), EventTime: base.Add(30 * time.Second)},
		{ID: 3, Symbol: "AAPL", Price: price("191.00"), Volume: vol(300), EventTime: base.Add(70 * time.Second)},
	}

	bars := iv.AggregateBuckets(ticks)
	require.Len(t, bars, 3)

	// Sorted by symbol then bucket start.
	assert.Equal(t, "AAPL", bars[0].Symbol)
	assert.True(t, bars[0].BucketStart.Equal(base))
	assert.Equal(t, "AAPL", bars[1].Symbol)
	assert.True(t, bars[1].BucketStart.Equal(base.Add(time.Minute)))
	assert.Equal(t, "MSFT", bars[2].Symbol)
}

func TestAggregateBuckets_DuplicateTicksInflateVolume(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	dup := TickData{Symbol: "TSLA", Price: price("245.00"), Volume: vol(1000), EventTime: base.Add(15 * time.Second)}
	dup2 := dup
	dup2.ID = 2
	dup.ID = 1

	bars := iv.AggregateBuckets([]TickData{dup, dup2})
	require.Len(t, bars, 1)

	// Redelivered ticks are not deduplicated: both count.
	assert.Equal(t, int64(2000), bars[0].VolumeSum)
	assert.Equal(t, int32(2), bars[0].TickCount)
	assert.True(t, bars[0].Open.Equal(price("245.00")))
	assert.True(t, bars[0].Close.Equal(price("245.00")))
}

func TestAggregateBuckets_Empty(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	assert.Empty(t, iv.AggregateBuckets(nil))
	assert.Empty(t, iv.AggregateBuckets([]TickData{}))
}

func TestAggregateBuckets_NilVolume(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ticks := []TickData{
		{ID: 1, Symbol: "NVDA", Price: price("875.00"), Volume: nil, EventTime: base},
		{ID: 2, Symbol: "NVDA", Price: price("876.00"), Volume: vol(400), EventTime: base.Add(time.Second)},
	}

	bars := iv.AggregateBuckets(ticks)
	require.Len(t, bars, 1)
	assert.Equal(t, int64(400), bars[0].VolumeSum)
	assert.Equal(t, int32(2), bars[0].TickCount)
}

func TestAggregateBuckets_EventTimeTieBreaks(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	// All four ticks share event times pairwise; ids decide.
	ticks := []TickData{
		{ID: 7, Symbol: "AMZN", Price: price("185.50"), Volume: vol(1), EventTime: base},
		{ID: 3, Symbol: "AMZN", Price: price("185.10"), Volume: vol(1), EventTime: base},
		{ID: 9, Symbol: "AMZN", Price: price("186.00"), Volume: vol(1), EventTime: base.Add(30 * time.Second)},
		{ID: 12, Symbol: "AMZN", Price: price("185.90"), Volume: vol(1), EventTime: base.Add(30 * time.Second)},
	}

	bars := iv.AggregateBuckets(ticks)
	require.Len(t, bars, 1)

	// Open comes from the lowest id at the earliest event time, close
	// from the highest id at the latest event time.
	assert.True(t, bars[0].Open.Equal(price("185.10")), "open %s", bars[0].Open)
	assert.True(t, bars[0].Close.Equal(price("185.90")), "close %s", bars[0].Close)
}

func TestAggregateBuckets_OrderIndependence(t *testing.T) {
	iv, err := GetInterval("1m")
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ticks := make([]TickData, 0, 50)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		ticks = append(ticks, TickData{
			ID:        int64(i + 1),
			Symbol:    []string{"AAPL", "MSFT", "GOOG"}[i%3],
			Price:     decimal.NewFromFloat(100 + rng.Float64()*10).Round(4),
			Volume:    vol(int64(rng.Intn(5000))),
			EventTime: base.Add(time.Duration(rng.Intn(300)) * time.Second),
		})
	}

	want := iv.AggregateBuckets(ticks)

	for trial := 0; trial < 5; trial++ {
		shuffled := make([]TickData, len(ticks))
		copy(shuffled, ticks)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := iv.AggregateBuckets(shuffled)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].Symbol, got[i].Symbol)
			assert.True(t, want[i].BucketStart.Equal(got[i].BucketStart))
			assert.True(t, want[i].Open.Equal(got[i].Open))
			assert.True(t, want[i].High.Equal(got[i].High))
			assert.True(t, want[i].Low.Equal(got[i].Low))
			assert.True(t, want[i].Close.Equal(got[i].Close))
			assert.Equal(t, want[i].VolumeSum, got[i].VolumeSum)
			assert.Equal(t, want[i].TickCount, got[i].TickCount)
		}
	}
}
