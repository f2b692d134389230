// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/service"
	"github.com/MKhiriev/mystery-message/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock method calls its function field when set and returns zero
// values otherwise.

type mockAuthService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) error
	verifyFn        func(ctx context.Context, req models.VerifyRequest) error
	resendFn        func(ctx context.Context, req models.ResendRequest) error
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	checkUsernameFn func(ctx context.Context, query models.UsernameQuery) (bool, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if m.registerFn == nil {
		return nil
	}
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Verify(ctx context.Context, req models.VerifyRequest) error {
	if m.verifyFn == nil {
		return nil
	}
	return m.verifyFn(ctx, req)
}

func (m *mockAuthService) Resend(ctx context.Context, req models.ResendRequest) error {
	if m.resendFn == nil {
		return nil
	}
	return m.resendFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CheckUsernameAvailable(ctx context.Context, query models.UsernameQuery) (bool, error) {
	if m.checkUsernameFn == nil {
		return true, nil
	}
	return m.checkUsernameFn(ctx, query)
}

type mockInboxService struct {
	setAcceptingFn    func(ctx context.Context, userID int64, accepting bool) (bool, error)
	acceptingStatusFn func(ctx context.Context, userID int64) (bool, error)
	submitFn          func(ctx context.Context, req models.SendMessageRequest) error
	listFn            func(ctx context.Context, userID int64) ([]models.Message, error)
	deleteFn          func(ctx context.Context, userID int64, messageID string) error
	profileFn         func(ctx context.Context, query models.UsernameQuery) (models.Profile, error)
	accountFn         func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockInboxService) SetAcceptingMessages(ctx context.Context, userID int64, accepting bool) (bool, error) {
	if m.setAcceptingFn == nil {
		return accepting, nil
	}
	return m.setAcceptingFn(ctx, userID, accepting)
}

func (m *mockInboxService) AcceptingStatus(ctx context.Context, userID int64) (bool, error) {
	if m.acceptingStatusFn == nil {
		return false, nil
	}
	return m.acceptingStatusFn(ctx, userID)
}

func (m *mockInboxService) SubmitMessage(ctx context.Context, req models.SendMessageRequest) error {
	if m.submitFn == nil {
		return nil
	}
	return m.submitFn(ctx, req)
}

func (m *mockInboxService) ListMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, userID)
}

func (m *mockInboxService) DeleteMessage(ctx context.Context, userID int64, messageID string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, userID, messageID)
}

func (m *mockInboxService) Profile(ctx context.Context, query models.UsernameQuery) (models.Profile, error) {
	if m.profileFn == nil {
		return models.Profile{}, nil
	}
	return m.profileFn(ctx, query)
}

func (m *mockInboxService) Account(ctx context.Context, userID int64) (models.User, error) {
	if m.accountFn == nil {
		return models.User{}, nil
	}
	return m.accountFn(ctx, userID)
}

type mockSuggestionService struct {
	suggestFn func(ctx context.Context, req models.SuggestRequest) ([]string, error)
}

func (m *mockSuggestionService) Suggest(ctx context.Context, req models.SuggestRequest) ([]string, error) {
	if m.suggestFn == nil {
		return []string{}, nil
	}
	return m.suggestFn(ctx, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices fills every nil service with a default mock.
func testServices(svcs *service.Services) *service.Services {
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.InboxService == nil {
		svcs.InboxService = &mockInboxService{}
	}
	if svcs.SuggestionService == nil {
		svcs.SuggestionService = &mockSuggestionService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return svcs
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(testServices(svcs), config.Server{}, logger.Nop()).Init()
}

// authedParser accepts the token "good" as user 7.
func authedParser(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != "good" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, UserID: 7}, nil
}

func serve(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
