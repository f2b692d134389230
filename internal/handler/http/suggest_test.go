package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/models"
)

func TestSuggestMessages(t *testing.T) {
	var got models.SuggestRequest
	router := newTestRouter(t, &service.Services{SuggestionService: &mockSuggestionService{
		suggestFn: func(_ context.Context, req models.SuggestRequest) ([]string, error) {
			got = req
			return []string{"one", "two"}, nil
		},
	}})

	rec := serve(t, router, http.MethodPost, "/api/suggest-messages", `{"username":"alice","tone":"funny","count":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"one", "two"}, decodeBody[models.SuggestionsResponse](t, rec).Suggestions)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, models.ToneFunny, got.Tone)
	assert.Equal(t, 2, got.Count)
	assert.Empty(t, got.Length)
}

func TestSuggestMessages_Failures(t *testing.T) {
	for err, status := range map[error]int{
		service.ErrValidation: http.StatusBadRequest,
		store.ErrUserNotFound: http.StatusNotFound,
	} {
		router := newTestRouter(t, &service.Services{SuggestionService: &mockSuggestionService{
			suggestFn: func(context.Context, models.SuggestRequest) ([]string, error) { return nil, err },
		}})

		rec := serve(t, router, http.MethodPost, "/api/suggest-messages", `{"username":"alice"}`)

		assert.Equal(t, status, rec.Code, err.Error())
	}
}
