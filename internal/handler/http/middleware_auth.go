package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context with [utils.WithUserID]
// before delegating to the next handler.
//
// Every rejection is a 401 with kind "unauthorized".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthorized, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization" header
// value of the form "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}

// userID returns the identity set by auth, or 0 when absent. The services
// reject 0 with [service.ErrUnauthorized].
func userID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}
