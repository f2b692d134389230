package http

import (
	"net/http"

	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

// profile serves the public view a sender sees before writing.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	query := models.UsernameQuery{Username: r.URL.Query().Get("username")}

	profile, err := h.services.InboxService.Profile(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{APIResponse: models.APIResponse{Success: true}, User: profile}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.InboxService.Account(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AccountResponse{APIResponse: models.APIResponse{Success: true}, User: user}, http.StatusOK)
}
