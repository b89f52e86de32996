package interval

import (
	"fmt"
	"time"
)

// Interval represents a fixed bucket width for bar aggregation.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Supported intervals configuration
var (
	Interval1m  = Interval{Name: "1m", Duration: time.Minute}
	Interval5m  = Interval{Name: "5m", Duration: 5 * time.Minute}
	Interval15m = Interval{Name: "15m", Duration: 15 * time.Minute}
	Interval1h  = Interval{Name: "1h", Duration: time.Hour}
	Interval1d  = Interval{Name: "1d", Duration: 24 * time.Hour}
)

// AllIntervals lists every supported interval.
var AllIntervals = []Interval{
	Interval1m, Interval5m, Interval15m, Interval1h, Interval1d,
}

var intervalRegistry = make(map[string]Interval)

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// GetInterval returns an interval by name
func GetInterval(name string) (Interval, error) {
	interval, exists := intervalRegistry[name]
	if !exists {
		return Interval{}, fmt.Errorf("unsupported interval: %s", name)
	}
	return interval, nil
}

// IsValidInterval checks if interval name is supported
func IsValidInterval(name string) bool {
	_, exists := intervalRegistry[name]
	return exists
}
