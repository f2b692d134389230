package adapter

import "errors"

// Sentinel errors mapped from provider HTTP responses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("provider unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrEmptyCompletion is returned when a provider responds without text.
	ErrEmptyCompletion = errors.New("provider returned empty completion")

	// ErrAllModelsFailed is returned by the Gemini provider when none of its
	// models produced a response.
	ErrAllModelsFailed = errors.New("all models failed")
)
