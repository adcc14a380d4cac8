package errors

import "net/http"

var (
	ErrMapNotReady = New(
		"MAP_NOT_READY",
		"Map is not loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrMapLoadFailed = New(
		"MAP_LOAD_FAILED",
		"Error loading maps",
		http.StatusServiceUnavailable,
	)

	ErrSearchNotReady = New(
		"SEARCH_NOT_READY",
		"Address search is not available yet",
		http.StatusServiceUnavailable,
	)

	ErrMarkerNotFound = New(
		"MARKER_NOT_FOUND",
		"Marker not found",
		http.StatusNotFound,
	)

	ErrInvalidMarkerID = New(
		"INVALID_MARKER_ID",
		"Invalid marker ID",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
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
