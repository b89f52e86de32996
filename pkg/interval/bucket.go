package interval

import (
	"time"
)

// CalculateBucketTime calculates the start time of the interval bucket.
// Buckets are aligned in UTC.
func (i Interval) CalculateBucketTime(timestamp time.Time) time.Time {
	ts := timestamp.UTC()
	switch i.Name {
	case "1d":
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return ts.Truncate(i.Duration)
	}
}

// GetBucketRange returns the start and end time of the interval bucket
func (i Interval) GetBucketRange(timestamp time.Time) (start, end time.Time) {
	start = i.CalculateBucketTime(timestamp)
	end = start.Add(i.Duration)
	return start, end
}

// IsInBucket checks if a timestamp falls within the same bucket as another timestamp
func (i Interval) IsInBucket(timestamp1, timestamp2 time.Time) bool {
	return i.CalculateBucketTime(timestamp1).Equal(i.CalculateBucketTime(timestamp2))
}
