package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

// Failure kinds reported in the "kind" field of error responses.
const (
	kindValidation         = "validation_error"
	kindHandleTaken        = "handle_taken"
	kindEmailTaken         = "email_taken"
	kindDeliveryFailed     = "delivery_failed"
	kindNotFound           = "not_found"
	kindCodeMismatch       = "code_mismatch"
	kindCodeExpired        = "code_expired"
	kindNotAccepting       = "not_accepting"
	kindUnauthorized       = "unauthorized"
	kindInvalidCredentials = "invalid_credentials"
	kindNotVerified        = "not_verified"
	kindInternal           = "internal"
)

type errorResponse struct {
	target  error
	status  int
	kind    string
	message string

	// withReason appends the wrapped reason to message.
	withReason bool
}

// errorResponses is matched in order with errors.Is. The first match wins.
var errorResponses = []errorResponse{
	{target: service.ErrValidation, status: http.StatusBadRequest, kind: kindValidation, message: "Invalid request", withReason: true},
	{target: service.ErrHandleTaken, status: http.StatusConflict, kind: kindHandleTaken, message: "Username is already taken"},
	{target: service.ErrEmailTaken, status: http.StatusConflict, kind: kindEmailTaken, message: "User already exists with this email"},
	{target: service.ErrDeliveryFailed, status: http.StatusBadGateway, kind: kindDeliveryFailed, message: "Failed to send verification email"},
	{target: service.ErrCodeMismatch, status: http.StatusBadRequest, kind: kindCodeMismatch, message: "Incorrect verification code"},
	{target: service.ErrCodeExpired, status: http.StatusBadRequest, kind: kindCodeExpired, message: "Verification code has expired, please request a new code"},
	{target: service.ErrNotAccepting, status: http.StatusForbidden, kind: kindNotAccepting, message: "User is not accepting messages"},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, kind: kindUnauthorized, message: "Not authenticated"},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, kind: kindUnauthorized, message: "Not authenticated"},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, kind: kindInvalidCredentials, message: "Incorrect username or password"},
	{target: service.ErrNotVerified, status: http.StatusForbidden, kind: kindNotVerified, message: "Please verify your account before logging in"},
	{target: store.ErrUserNotFound, status: http.StatusNotFound, kind: kindNotFound, message: "User not found"},
	{target: store.ErrMessageNotFound, status: http.StatusNotFound, kind: kindNotFound, message: "Message not found or already deleted"},
}

var internalErrorResponse = errorResponse{
	status:  http.StatusInternalServerError,
	kind:    kindInternal,
	message: http.StatusText(http.StatusInternalServerError),
}

func responseFromError(err error) errorResponse {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp
		}
	}
	return internalErrorResponse
}

// writeError logs err with the request logger and writes the matching
// failure envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", resp.kind).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", resp.kind).Msg("request rejected")
	}

	message := resp.message
	if resp.withReason {
		message = err.Error()
	}

	writeFailure(w, resp.status, resp.kind, message)
}

func writeFailure(w http.ResponseWriter, status int, kind, message string) {
	utils.WriteJSON(w, models.APIResponse{Success: false, Kind: kind, Message: message}, status)
}

// writeAck writes a success envelope without payload.
func writeAck(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: message}, status)
}
