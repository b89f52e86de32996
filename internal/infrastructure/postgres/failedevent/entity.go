package failedevent

import "time"

// FailedEvent is a dead-lettered stream message. The raw payload and the
// stream coordinates are kept so the message can be inspected or replayed.
type FailedEvent struct {
	ID           int64     `json:"id"`
	Source       string    `json:"source"`
	Topic        string    `json:"topic"`
	Partition    int       `json:"partition"`
	Offset       int64     `json:"offset"`
	RawValue     []byte    `json:"raw_value"`
	ErrorMessage string    `json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
}
