package errors

import "net/http"

const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeReferenced       = "REFERENCED"
)

var (
	ErrClientNotFound = New(
		"CLIENT_NOT_FOUND",
		"Client not found",
		http.StatusNotFound,
	)

	ErrTourNotFound = New(
		"TOUR_NOT_FOUND",
		"Tour not found",
		http.StatusNotFound,
	)

	ErrBookingNotFound = New(
		"BOOKING_NOT_FOUND",
		"Booking not found",
		http.StatusNotFound,
	)

	ErrTravelerNotFound = New(
		"TRAVELER_NOT_FOUND",
		"Traveler not found",
		http.StatusNotFound,
	)

	ErrAnimalNotFound = New(
		"ANIMAL_NOT_FOUND",
		"Animal not found",
		http.StatusNotFound,
	)

	ErrDocumentNotFound = New(
		"DOCUMENT_NOT_FOUND",
		"Document not found",
		http.StatusNotFound,
	)

	ErrInvalidArgument = New(
		CodeInvalidArgument,
		"Invalid argument",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		CodeValidationFailed,
		"Validation failed",
		http.StatusUnprocessableEntity,
	)

	ErrReferenced = New(
		CodeReferenced,
		"Entity is referenced by existing bookings",
		http.StatusConflict,
	)

	ErrSnapshotNotFound = New(
		"SNAPSHOT_NOT_FOUND",
		"Snapshot not found",
		http.StatusNotFound,
	)

	ErrSnapshotIO = New(
		"SNAPSHOT_IO_ERROR",
		"Snapshot input/output failed",
		http.StatusInternalServerError,
	)

	ErrSnapshotMalformed = New(
		"SNAPSHOT_MALFORMED",
		"Snapshot is malformed",
		http.StatusUnprocessableEntity,
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
