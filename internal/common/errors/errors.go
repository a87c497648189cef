package commonerrors

import "net/http"

var (
	ErrInvalidJSON = NewDomainError(
		"INVALID_JSON",
		CategoryValidation,
		http.StatusBadRequest,
		"invalid json",
	)

	ErrValidationFailed = NewDomainError(
		"VALIDATION_FAILED",
		CategoryValidation,
		http.StatusBadRequest,
		"Validation failed",
	)

	ErrInquiryNotFound = NewDomainError(
		"INQUIRY_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"Inquiry not found",
	)

	ErrUserNotFound = NewDomainError(
		"USER_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"User not found",
	)

	ErrUsernameAlreadyExists = NewDomainError(
		"USERNAME_ALREADY_EXISTS",
		CategoryConflict,
		http.StatusConflict,
		"Username already exists",
	)

	ErrServerConfiguration = NewDomainError(
		"SERVER_CONFIGURATION",
		CategoryInternal,
		http.StatusInternalServerError,
		"Server configuration error",
	)

	ErrSubmissionFailed = NewDomainError(
		"SUBMISSION_FAILED",
		CategoryExternal,
		http.StatusInternalServerError,
		"Failed to submit form. Please try again later.",
	)

	ErrCircuitOpen = NewDomainError(
		"CIRCUIT_OPEN",
		CategoryExternal,
		http.StatusServiceUnavailable,
		"circuit breaker is open",
	)

	ErrInternalError = NewDomainError(
		"INTERNAL_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"Internal server error",
	)
)
