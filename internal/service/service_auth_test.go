package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/mailer"
	"github.com/MKhiriev/mystery-message/internal/mock"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/internal/validators"
	"github.com/MKhiriev/mystery-message/models"
)

const testCodeTTL = 10 * time.Minute

// stubCodes returns its codes in order, repeating the last one.
type stubCodes struct {
	codes []string
	next  int
}

func (s *stubCodes) Generate() (string, error) {
	code := s.codes[min(s.next, len(s.codes)-1)]
	s.next++
	return code, nil
}

type authFixture struct {
	svc    *authService
	store  *store.MemoryStorage
	mailer *mock.MockMailer
	clock  *time.Time
}

func newAuthFixture(t *testing.T, codes ...string) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mock.NewMockMailer(ctrl)
	mem := store.NewMemoryStorage()

	appCfg := config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "mystery-message-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
	svc := NewAuthService(mem, m, appCfg, config.Verification{CodeTTL: testCodeTTL}, logger.Nop()).(*authService)

	if len(codes) == 0 {
		codes = []string{"12345"}
	}
	svc.codes = &stubCodes{codes: codes}

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	return &authFixture{svc: svc, store: mem, mailer: m, clock: &clock}
}

func (f *authFixture) expectEmail(to, username, code string) {
	f.mailer.EXPECT().
		SendVerificationEmail(gomock.Any(), mailer.VerificationEmail{To: to, Username: username, Code: code, ExpiresIn: testCodeTTL}).
		Return(nil)
}

func (f *authFixture) register(t *testing.T, username, email, password string) {
	t.Helper()
	require.NoError(t, f.svc.Register(context.Background(), models.RegisterRequest{Username: username, Email: email, Password: password}))
}

func (f *authFixture) registerVerified(t *testing.T, username, email, password, code string) {
	t.Helper()
	f.expectEmail(email, username, code)
	f.register(t, username, email, password)
	require.NoError(t, f.svc.Verify(context.Background(), models.VerifyRequest{Username: username, Code: code}))
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_NewUser(t *testing.T) {
	f := newAuthFixture(t, "04213")
	f.expectEmail("alice@example.com", "alice", "04213")

	f.register(t, "alice", "alice@example.com", "secret1")

	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.True(t, user.IsAcceptingMessages)
	assert.Equal(t, "04213", user.VerifyCode)
	require.NotNil(t, user.VerifyCodeExpiry)
	assert.Equal(t, f.clock.Add(testCodeTTL), *user.VerifyCodeExpiry)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestRegister_VerifiedHandle_ReturnsHandleTaken(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")

	err := f.svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "secret2"})

	assert.ErrorIs(t, err, ErrHandleTaken)
}

func TestRegister_VerifiedEmail_ReturnsEmailTaken(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")

	err := f.svc.Register(context.Background(), models.RegisterRequest{Username: "bob", Email: "alice@example.com", Password: "secret2"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_UnverifiedEmail_ReusesRecord(t *testing.T) {
	f := newAuthFixture(t, "11111", "22222")
	f.expectEmail("alice@example.com", "alice", "11111")
	f.register(t, "alice", "alice@example.com", "secret1")
	first, err := f.store.FindUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)

	// The existing handle is kept and the new code goes to it.
	f.expectEmail("alice@example.com", "alice", "22222")
	f.register(t, "alice2", "alice@example.com", "secret2")

	second, err := f.store.FindUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, "alice", second.Username)
	assert.Equal(t, "22222", second.VerifyCode)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(second.PasswordHash), []byte("secret2")))

	_, err = f.store.FindUserByUsername(context.Background(), "alice2")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestRegister_UnverifiedHandle_IsSuperseded(t *testing.T) {
	f := newAuthFixture(t, "11111", "22222")
	f.expectEmail("first@example.com", "alice", "11111")
	f.register(t, "alice", "first@example.com", "secret1")

	f.expectEmail("second@example.com", "alice", "22222")
	f.register(t, "alice", "second@example.com", "secret2")

	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", user.Email)
	assert.Equal(t, "22222", user.VerifyCode)

	_, err = f.store.FindUserByEmail(context.Background(), "first@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestRegister_SupersededHandle_StartsWithEmptyInbox(t *testing.T) {
	f := newAuthFixture(t, "11111", "22222")
	f.expectEmail("first@example.com", "alice", "11111")
	f.register(t, "alice", "first@example.com", "secret1")

	first, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	_, err = f.store.AppendMessage(context.Background(), models.Message{
		MessageID: "0190a5d4-0000-7000-8000-000000000001",
		UserID:    first.UserID,
		Content:   "private note for the first registrant",
		CreatedAt: *f.clock,
	})
	require.NoError(t, err)

	*f.clock = f.clock.Add(time.Minute)
	f.expectEmail("second@example.com", "alice", "22222")
	f.register(t, "alice", "second@example.com", "secret2")
	require.NoError(t, f.svc.Verify(context.Background(), models.VerifyRequest{Username: "alice", Code: "22222"}))

	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, f.clock.UTC(), user.CreatedAt)

	messages, err := f.store.ListMessages(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestRegister_DeliveryFailure_KeepsRecord(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	err := f.svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "11111", user.VerifyCode)
}

// ─────────────────────────────────────────────
// Verify
// ─────────────────────────────────────────────

func TestVerify_Success(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")

	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerifyCode)
	assert.Nil(t, user.VerifyCodeExpiry)
}

func TestVerify_NormalizesHandleOnly(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.expectEmail("a@example.com", "al_ice", "11111")
	f.register(t, "al_ice", "a@example.com", "secret1")

	err := f.svc.Verify(context.Background(), models.VerifyRequest{Username: "al_ice", Code: " 11111\t"})
	assert.ErrorIs(t, err, ErrCodeMismatch)

	err = f.svc.Verify(context.Background(), models.VerifyRequest{Username: " al%5Fice ", Code: "11111"})
	require.NoError(t, err)
}

func TestVerify_SameCodeTwice_ReturnsCodeMismatch(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")

	err := f.svc.Verify(context.Background(), models.VerifyRequest{Username: "alice", Code: "11111"})

	assert.ErrorIs(t, err, ErrCodeMismatch)
	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerifyCode)
	assert.Nil(t, user.VerifyCodeExpiry)
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     models.VerifyRequest
		advance time.Duration
		wantErr error
	}{
		{name: "unknown handle", req: models.VerifyRequest{Username: "nobody", Code: "11111"}, wantErr: store.ErrUserNotFound},
		{name: "wrong code", req: models.VerifyRequest{Username: "alice", Code: "99999"}, wantErr: ErrCodeMismatch},
		{name: "expired code", req: models.VerifyRequest{Username: "alice", Code: "11111"}, advance: testCodeTTL + time.Second, wantErr: ErrCodeExpired},
		{name: "blank code", req: models.VerifyRequest{Username: "alice", Code: "  "}, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, "11111")
			f.expectEmail("alice@example.com", "alice", "11111")
			f.register(t, "alice", "alice@example.com", "secret1")
			before, err := f.store.FindUserByUsername(context.Background(), "alice")
			require.NoError(t, err)
			*f.clock = f.clock.Add(tt.advance)

			err = f.svc.Verify(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			user, findErr := f.store.FindUserByUsername(context.Background(), "alice")
			require.NoError(t, findErr)
			assert.False(t, user.IsVerified)
			assert.Equal(t, before.VerifyCode, user.VerifyCode)
			require.NotNil(t, user.VerifyCodeExpiry)
			assert.True(t, before.VerifyCodeExpiry.Equal(*user.VerifyCodeExpiry))
		})
	}
}

func TestVerify_ExactlyAtExpiry_Succeeds(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.expectEmail("alice@example.com", "alice", "11111")
	f.register(t, "alice", "alice@example.com", "secret1")
	*f.clock = f.clock.Add(testCodeTTL)

	assert.NoError(t, f.svc.Verify(context.Background(), models.VerifyRequest{Username: "alice", Code: "11111"}))
}

// ─────────────────────────────────────────────
// Resend
// ─────────────────────────────────────────────

func TestResend_IssuesDifferentCode(t *testing.T) {
	f := newAuthFixture(t, "11111", "11111", "22222")
	f.expectEmail("alice@example.com", "alice", "11111")
	f.register(t, "alice", "alice@example.com", "secret1")
	*f.clock = f.clock.Add(time.Hour)

	f.expectEmail("alice@example.com", "alice", "22222")
	require.NoError(t, f.svc.Resend(context.Background(), models.ResendRequest{Username: "alice"}))

	assert.ErrorIs(t, f.svc.Verify(context.Background(), models.VerifyRequest{Username: "alice", Code: "11111"}), ErrCodeMismatch)
	assert.NoError(t, f.svc.Verify(context.Background(), models.VerifyRequest{Username: "alice", Code: "22222"}))
}

func TestResend_VerifiedUserAllowed(t *testing.T) {
	f := newAuthFixture(t, "11111", "33333")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")

	f.expectEmail("alice@example.com", "alice", "33333")
	assert.NoError(t, f.svc.Resend(context.Background(), models.ResendRequest{Username: "alice"}))
}

func TestResend_UnknownHandle(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Resend(context.Background(), models.ResendRequest{Username: "ghost"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestResend_DeliveryFailure_KeepsNewCode(t *testing.T) {
	f := newAuthFixture(t, "11111", "22222")
	f.expectEmail("alice@example.com", "alice", "11111")
	f.register(t, "alice", "alice@example.com", "secret1")
	f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any()).Return(errors.New("rejected"))

	err := f.svc.Resend(context.Background(), models.ResendRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	user, err := f.store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "22222", user.VerifyCode)
}

func TestResend_GeneratorStuck_ReturnsError(t *testing.T) {
	f := newAuthFixture(t, "11111")
	f.expectEmail("alice@example.com", "alice", "11111")
	f.register(t, "alice", "alice@example.com", "secret1")

	err := f.svc.Resend(context.Background(), models.ResendRequest{Username: "alice"})

	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// Login and tokens
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	f := newAuthFixture(t, "11111", "22222")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")
	f.expectEmail("bob@example.com", "bob", "22222")
	f.register(t, "bob", "bob@example.com", "secret2")

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "by username", req: models.LoginRequest{Identifier: "alice", Password: "secret1"}},
		{name: "by email", req: models.LoginRequest{Identifier: " alice@example.com ", Password: "secret1"}},
		{name: "wrong password", req: models.LoginRequest{Identifier: "alice", Password: "nope"}, wantErr: ErrInvalidCredentials},
		{name: "unknown identifier", req: models.LoginRequest{Identifier: "carol", Password: "secret1"}, wantErr: ErrInvalidCredentials},
		{name: "unverified", req: models.LoginRequest{Identifier: "bob", Password: "secret2"}, wantErr: ErrNotVerified},
		{name: "unverified wrong password", req: models.LoginRequest{Identifier: "bob", Password: "nope"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := f.svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

func TestCreateAndParseToken(t *testing.T) {
	f := newAuthFixture(t)

	token, err := f.svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := f.svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.ParseToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_OtherIssuer(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	f.svc.tokenIssuer = "someone-else"
	_, err = f.svc.ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// CheckUsernameAvailable
// ─────────────────────────────────────────────

func TestCheckUsernameAvailable(t *testing.T) {
	f := newAuthFixture(t, "11111", "22222")
	f.registerVerified(t, "alice", "alice@example.com", "secret1", "11111")
	f.expectEmail("bob@example.com", "bob", "22222")
	f.register(t, "bob", "bob@example.com", "secret2")

	for username, want := range map[string]bool{"alice": false, "bob": true, "carol": true} {
		available, err := f.svc.CheckUsernameAvailable(context.Background(), models.UsernameQuery{Username: username})
		require.NoError(t, err)
		assert.Equal(t, want, available, username)
	}
}

// ─────────────────────────────────────────────
// AuthValidationService
// ─────────────────────────────────────────────

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	f := newAuthFixture(t)
	svc := NewAuthValidationService().Wrap(f.svc)
	ctx := context.Background()

	err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	err = svc.Register(ctx, models.RegisterRequest{Username: "a!", Email: "a@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Verify(ctx, models.VerifyRequest{Username: "alice"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Resend(ctx, models.ResendRequest{Username: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, models.LoginRequest{Identifier: "alice"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CheckUsernameAvailable(ctx, models.UsernameQuery{Username: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.store.FindUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthValidationService_PassesValidRequests(t *testing.T) {
	f := newAuthFixture(t, "11111")
	svc := NewAuthValidationService().Wrap(f.svc)
	f.expectEmail("alice@example.com", "alice", "11111")

	require.NoError(t, svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}))
	require.NoError(t, svc.Verify(context.Background(), models.VerifyRequest{Username: "alice", Code: "11111"}))

	user, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}
