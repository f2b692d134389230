package http

import (
	"net/http"

	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

func (h *Handler) suggestMessages(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	suggestions, err := h.services.SuggestionService.Suggest(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuggestionsResponse{
		APIResponse: models.APIResponse{Success: true},
		Suggestions: suggestions,
	}, http.StatusOK)
}
