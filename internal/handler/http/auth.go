package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

// decode reads the JSON body into v. Malformed bodies are validation errors.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := utils.DecodeJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrValidation, err)
	}
	return nil
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeAck(w, "User registered successfully. Please verify your email", http.StatusCreated)
}

func (h *Handler) verifyCode(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Verify(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeAck(w, "Account verified successfully", http.StatusOK)
}

func (h *Handler) resendCode(w http.ResponseWriter, r *http.Request) {
	var req models.ResendRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Resend(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeAck(w, "Verification code sent", http.StatusOK)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AccountResponse{APIResponse: models.APIResponse{Success: true}, User: user}, http.StatusOK)
}

func (h *Handler) checkUsernameUnique(w http.ResponseWriter, r *http.Request) {
	query := models.UsernameQuery{Username: r.URL.Query().Get("username")}

	available, err := h.services.AuthService.CheckUsernameAvailable(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Username is unique"
	if !available {
		message = "Username is already taken"
	}

	utils.WriteJSON(w, models.AvailabilityResponse{
		APIResponse: models.APIResponse{Success: true, Message: message},
		Available:   available,
	}, http.StatusOK)
}
