package errors

import "net/http"

var (
	ErrItemNotFound = New(
		"ITEM_NOT_FOUND",
		"Item not found",
		http.StatusNotFound,
	)

	ErrInvalidItemID = New(
		"INVALID_ITEM_ID",
		"Invalid item ID",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrSourceUnavailable = New(
		"SOURCE_UNAVAILABLE",
		"Catalog data source is unavailable",
		http.StatusServiceUnavailable,
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

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
