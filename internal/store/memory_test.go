package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mystery-message/models"
)

func pendingUser(username, email string) models.User {
	expiry := time.Now().Add(10 * time.Minute)
	return models.User{
		Username:         username,
		Email:            email,
		PasswordHash:     "hash",
		VerifyCode:       "12345",
		VerifyCodeExpiry: &expiry,
		CreatedAt:        time.Now(),
	}
}

func TestMemoryStorage_CreatePendingUser(t *testing.T) {
	ctx := context.Background()

	t.Run("new user starts unverified and accepting", func(t *testing.T) {
		m := NewMemoryStorage()
		user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
		assert.False(t, user.IsVerified)
		assert.True(t, user.IsAcceptingMessages)
	})

	t.Run("unverified holder is superseded", func(t *testing.T) {
		m := NewMemoryStorage()
		first, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
		require.NoError(t, err)

		second, err := m.CreatePendingUser(ctx, pendingUser("alice", "b@example.com"))
		require.NoError(t, err)
		assert.Equal(t, first.UserID, second.UserID)
		assert.Equal(t, "b@example.com", second.Email)

		_, err = m.FindUserByEmail(ctx, "a@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("superseded holder loses its messages", func(t *testing.T) {
		m := NewMemoryStorage()
		first, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
		require.NoError(t, err)
		_, err = m.AppendMessage(ctx, models.Message{MessageID: "m1", UserID: first.UserID, Content: "for the first owner"})
		require.NoError(t, err)

		claim := pendingUser("alice", "b@example.com")
		claim.CreatedAt = first.CreatedAt.Add(time.Hour)
		second, err := m.CreatePendingUser(ctx, claim)
		require.NoError(t, err)
		assert.True(t, second.CreatedAt.Equal(claim.CreatedAt))

		messages, err := m.ListMessages(ctx, second.UserID)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("verified holder keeps the handle", func(t *testing.T) {
		m := NewMemoryStorage()
		user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
		require.NoError(t, err)
		require.NoError(t, m.MarkVerified(ctx, user.UserID, "12345"))

		_, err = m.CreatePendingUser(ctx, pendingUser("alice", "b@example.com"))
		assert.ErrorIs(t, err, ErrUsernameAlreadyTaken)
	})

	t.Run("email held by another user", func(t *testing.T) {
		m := NewMemoryStorage()
		_, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
		require.NoError(t, err)

		_, err = m.CreatePendingUser(ctx, pendingUser("bob", "a@example.com"))
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	*user.VerifyCodeExpiry = time.Time{}
	user.Email = "changed"

	stored, err := m.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", stored.Email)
	assert.False(t, stored.VerifyCodeExpiry.IsZero())
}

func TestMemoryStorage_UpdatePendingUser(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	expiry := time.Now().Add(time.Hour)
	updated, err := m.UpdatePendingUser(ctx, user.UserID, "new-hash", "99999", expiry)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Equal(t, "99999", updated.VerifyCode)

	require.NoError(t, m.MarkVerified(ctx, user.UserID, "99999"))
	_, err = m.UpdatePendingUser(ctx, user.UserID, "x", "11111", expiry)
	assert.ErrorIs(t, err, ErrUserAlreadyVerified)
}

func TestMemoryStorage_MarkVerified(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	assert.ErrorIs(t, m.MarkVerified(ctx, user.UserID, "00000"), ErrVerificationCodeChanged)
	require.NoError(t, m.MarkVerified(ctx, user.UserID, "12345"))

	stored, err := m.FindUserByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.VerifyCode)
	assert.Nil(t, stored.VerifyCodeExpiry)
}

func TestMemoryStorage_FindUserByIdentifier(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	_, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	byEmail, err := m.FindUserByIdentifier(ctx, "a@example.com")
	require.NoError(t, err)
	byName, err := m.FindUserByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, byEmail.UserID, byName.UserID)

	_, err = m.FindUserByIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStorage_AppendMessage_Gate(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	_, err = m.AppendMessage(ctx, models.Message{MessageID: "1", UserID: user.UserID, Content: "hi"})
	require.NoError(t, err)

	_, err = m.SetAcceptingMessages(ctx, user.UserID, false)
	require.NoError(t, err)

	_, err = m.AppendMessage(ctx, models.Message{MessageID: "2", UserID: user.UserID, Content: "hi"})
	assert.ErrorIs(t, err, ErrNotAcceptingMessages)

	_, err = m.AppendMessage(ctx, models.Message{MessageID: "3", UserID: 42, Content: "hi"})
	assert.ErrorIs(t, err, ErrNotAcceptingMessages)

	messages, err := m.ListMessages(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestMemoryStorage_ListMessages_Order(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	base := time.Now()
	for i, offset := range []time.Duration{0, time.Minute, time.Minute, -time.Minute} {
		_, err = m.AppendMessage(ctx, models.Message{
			MessageID: fmt.Sprint(i),
			UserID:    user.UserID,
			Content:   fmt.Sprint("m", i),
			CreatedAt: base.Add(offset),
		})
		require.NoError(t, err)
	}

	messages, err := m.ListMessages(ctx, user.UserID)
	require.NoError(t, err)

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.MessageID)
	}
	assert.Equal(t, []string{"1", "2", "0", "3"}, ids)
}

func TestMemoryStorage_RecentMessages(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	for i := range 7 {
		_, err = m.AppendMessage(ctx, models.Message{MessageID: fmt.Sprint(i), UserID: user.UserID, Content: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	recent, err := m.RecentMessages(ctx, user.UserID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "2", recent[0].Content)
	assert.Equal(t, "6", recent[4].Content)

	none, err := m.RecentMessages(ctx, 99, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStorage_DeleteMessage_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	alice, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)
	bob, err := m.CreatePendingUser(ctx, pendingUser("bob", "b@example.com"))
	require.NoError(t, err)

	_, err = m.AppendMessage(ctx, models.Message{MessageID: "m1", UserID: alice.UserID, Content: "hi"})
	require.NoError(t, err)

	assert.ErrorIs(t, m.DeleteMessage(ctx, bob.UserID, "m1"), ErrMessageNotFound)
	require.NoError(t, m.DeleteMessage(ctx, alice.UserID, "m1"))
	assert.ErrorIs(t, m.DeleteMessage(ctx, alice.UserID, "m1"), ErrMessageNotFound)
}

func TestMemoryStorage_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	user, err := m.CreatePendingUser(ctx, pendingUser("alice", "a@example.com"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.AppendMessage(ctx, models.Message{MessageID: fmt.Sprint(i), UserID: user.UserID, Content: "x"})
		}()
	}
	wg.Wait()

	messages, err := m.ListMessages(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, messages, 50)
}
