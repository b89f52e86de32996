package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// ErrTickValidation represents a tick payload that failed field validation.
	ErrTickValidation ErrorCode = "tick_validation_error"
	// ErrTickMalformed represents a tick payload that could not be deserialized.
	ErrTickMalformed ErrorCode = "tick_malformed_error"
	// ErrTickStore represents a failure to persist a tick.
	ErrTickStore ErrorCode = "tick_store_error"

	// ErrBarUpsert represents a failure to upsert an aggregated bar.
	ErrBarUpsert ErrorCode = "bar_upsert_error"
	// ErrWatermark represents a failure to read or advance the progress watermark.
	ErrWatermark ErrorCode = "watermark_error"
	// ErrAggregationCycle represents an aggregation cycle abandoned mid-flight.
	ErrAggregationCycle ErrorCode = "aggregation_cycle_error"

	// ErrStreamRead represents a failure reading from the tick topic.
	ErrStreamRead ErrorCode = "stream_read_error"
	// ErrStreamCommit represents a failure committing a consumed offset.
	ErrStreamCommit ErrorCode = "stream_commit_error"
	// ErrStreamPublish represents a failure publishing to the tick topic.
	ErrStreamPublish ErrorCode = "stream_publish_error"
)
