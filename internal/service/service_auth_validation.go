package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mystery-message/internal/validators"
	"github.com/MKhiriev/mystery-message/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Verify(ctx context.Context, req models.VerifyRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}
	return v.inner.Verify(ctx, req)
}

func (v *AuthValidationService) Resend(ctx context.Context, req models.ResendRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}
	return v.inner.Resend(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, validationError(err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) CheckUsernameAvailable(ctx context.Context, query models.UsernameQuery) (bool, error) {
	if err := v.validator.Validate(ctx, query, validators.FieldUsername); err != nil {
		return false, validationError(err)
	}
	return v.inner.CheckUsernameAvailable(ctx, query)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// validationError keeps the validator's reason visible in the message.
func validationError(reason error) error {
	return fmt.Errorf("%w: %w", ErrValidation, reason)
}
