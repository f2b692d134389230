// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mystery-message/models"
)

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), models.RegisterRequest{}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_RegisterRequest(t *testing.T) {
	valid := models.RegisterRequest{Username: "alice_01", Email: "alice@example.com", Password: "secret"}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "empty username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantErr: ErrEmptyUsername},
		{name: "short username", mutate: func(r *models.RegisterRequest) { r.Username = "a" }, wantErr: ErrInvalidUsernameSize},
		{name: "long username", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 21) }, wantErr: ErrInvalidUsernameSize},
		{name: "bad characters", mutate: func(r *models.RegisterRequest) { r.Username = "al ice" }, wantErr: ErrInvalidUsernameChar},
		{name: "email without at", mutate: func(r *models.RegisterRequest) { r.Email = "alice.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email with display name", mutate: func(r *models.RegisterRequest) { r.Email = "Alice <alice@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "12345" }, wantErr: ErrPasswordTooShort},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegisterRequest_Pointer(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), &models.RegisterRequest{Username: "alice", Email: "bad", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	req := models.RegisterRequest{Username: "alice", Email: "bad"}
	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername))
}

func TestValidate_VerifyRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.VerifyRequest{Username: "alice", Code: "01234"}))
	assert.ErrorIs(t, v.Validate(ctx, models.VerifyRequest{Username: "  ", Code: "01234"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.VerifyRequest{Username: "alice"}), ErrEmptyCode)
}

func TestValidate_ResendRequest(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(context.Background(), models.ResendRequest{Username: "alice"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ResendRequest{}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.ResendRequest{}), ErrEmptyUsername)
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Identifier: "alice@example.com", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), ErrEmptyIdentifier)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Identifier: "alice"}), ErrEmptyPassword)
}

func TestValidate_SendMessageRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "300 characters accepted", content: strings.Repeat("a", 300)},
		{name: "300 multibyte characters accepted", content: strings.Repeat("ж", 300)},
		{name: "301 characters rejected", content: strings.Repeat("a", 301), wantErr: ErrContentTooLong},
		{name: "empty", content: "", wantErr: ErrEmptyContent},
		{name: "whitespace only", content: " \n\t ", wantErr: ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.SendMessageRequest{Username: "alice", Content: tt.content})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, models.SendMessageRequest{Content: "hi"}), ErrEmptyUsername)
}

func TestValidate_SuggestRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	withOpts := func(o models.SuggestionOptions) models.SuggestRequest {
		return models.SuggestRequest{Username: "alice", SuggestionOptions: o}
	}

	assert.NoError(t, v.Validate(ctx, withOpts(models.SuggestionOptions{})))
	assert.NoError(t, v.Validate(ctx, withOpts(models.SuggestionOptions{Tone: models.ToneFunny, Length: models.LengthLong, Count: 6})))
	assert.NoError(t, v.Validate(ctx, withOpts(models.SuggestionOptions{Count: 1})))
	assert.ErrorIs(t, v.Validate(ctx, withOpts(models.SuggestionOptions{Tone: "sarcastic"})), ErrInvalidTone)
	assert.ErrorIs(t, v.Validate(ctx, withOpts(models.SuggestionOptions{Length: "epic"})), ErrInvalidLength)
	assert.ErrorIs(t, v.Validate(ctx, withOpts(models.SuggestionOptions{Count: 7})), ErrInvalidCount)
	assert.ErrorIs(t, v.Validate(ctx, withOpts(models.SuggestionOptions{Count: -1})), ErrInvalidCount)
	assert.ErrorIs(t, v.Validate(ctx, models.SuggestRequest{}), ErrEmptyUsername)
}

func TestValidate_UsernameQuery(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(context.Background(), models.UsernameQuery{Username: "bob_2"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.UsernameQuery{Username: "b!"}), ErrInvalidUsernameChar)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.UsernameQuery{Username: "b!"}), ErrInvalidUsernameChar)
}
