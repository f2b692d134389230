package service

import (
	"context"

	"github.com/MKhiriev/mystery-message/internal/validators"
	"github.com/MKhiriev/mystery-message/models"
)

// SuggestionValidationService checks the handle and the tone, length and
// count options.
type SuggestionValidationService struct {
	inner     SuggestionService
	validator validators.Validator
}

func NewSuggestionValidationService() SuggestionServiceWrapper {
	return &SuggestionValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *SuggestionValidationService) Suggest(ctx context.Context, req models.SuggestRequest) ([]string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, validationError(err)
	}
	return v.inner.Suggest(ctx, req)
}

func (v *SuggestionValidationService) Wrap(wrapped SuggestionService) SuggestionService {
	v.inner = wrapped
	return v
}
