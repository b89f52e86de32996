package util

import "time"

// TimePointer converts a time.Time to a pointer to a time.Time.
func TimePointer(t time.Time) *time.Time {
	return &t
}

// Int64Pointer converts an int64 to a pointer to an int64.
func Int64Pointer(v int64) *int64 {
	return &v
}
