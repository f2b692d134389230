package service

import (
	"context"

	"github.com/MKhiriev/mystery-message/internal/validators"
	"github.com/MKhiriev/mystery-message/models"
)

// InboxValidationService validates anonymous submissions and profile lookups
// before they reach the wrapped InboxService.
type InboxValidationService struct {
	inner     InboxService
	validator validators.Validator
}

func NewInboxValidationService() InboxServiceWrapper {
	return &InboxValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *InboxValidationService) SetAcceptingMessages(ctx context.Context, userID int64, accepting bool) (bool, error) {
	return v.inner.SetAcceptingMessages(ctx, userID, accepting)
}

func (v *InboxValidationService) AcceptingStatus(ctx context.Context, userID int64) (bool, error) {
	return v.inner.AcceptingStatus(ctx, userID)
}

func (v *InboxValidationService) SubmitMessage(ctx context.Context, req models.SendMessageRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}
	return v.inner.SubmitMessage(ctx, req)
}

func (v *InboxValidationService) ListMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	return v.inner.ListMessages(ctx, userID)
}

func (v *InboxValidationService) DeleteMessage(ctx context.Context, userID int64, messageID string) error {
	return v.inner.DeleteMessage(ctx, userID, messageID)
}

func (v *InboxValidationService) Profile(ctx context.Context, query models.UsernameQuery) (models.Profile, error) {
	if err := v.validator.Validate(ctx, query, validators.FieldUsernamePresent); err != nil {
		return models.Profile{}, validationError(err)
	}
	return v.inner.Profile(ctx, query)
}

func (v *InboxValidationService) Account(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.Account(ctx, userID)
}

func (v *InboxValidationService) Wrap(wrapped InboxService) InboxService {
	v.inner = wrapped
	return v
}
