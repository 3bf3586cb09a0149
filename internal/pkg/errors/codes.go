package errors

import "net/http"

var (
	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date: expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidHour = New(
		"INVALID_HOUR",
		"Invalid hour: must be between 0 and 23",
		http.StatusBadRequest,
	)

	ErrInvalidBounds = New(
		"INVALID_BOUNDS",
		"Invalid spatial bounds: all four edges are required and must form a box",
		http.StatusBadRequest,
	)

	ErrInvalidEvent = New(
		"INVALID_EVENT",
		"Invalid event payload",
		http.StatusBadRequest,
	)

	ErrEventNotFound = New(
		"EVENT_NOT_FOUND",
		"Event not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
