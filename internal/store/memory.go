package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/mystery-message/models"
)

// MemoryStorage keeps users and messages in process memory. It implements
// both [UserRepository] and [MessageRepository] with the same semantics as
// the SQL repositories, each method holding one lock for its whole duration.
type MemoryStorage struct {
	mu sync.RWMutex

	users      map[int64]*models.User
	byUsername map[string]int64
	byEmail    map[string]int64
	nextUserID int64

	messages map[int64][]memoryMessage
	nextSeq  int64
}

type memoryMessage struct {
	seq int64
	msg models.Message
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:      make(map[int64]*models.User),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
		messages:   make(map[int64][]memoryMessage),
	}
}

func copyUser(u *models.User) models.User {
	c := *u
	if u.VerifyCodeExpiry != nil {
		t := *u.VerifyCodeExpiry
		c.VerifyCodeExpiry = &t
	}
	return c
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func (m *MemoryStorage) CreatePendingUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	holderID, held := m.byUsername[user.Username]
	if held && m.users[holderID].IsVerified {
		return models.User{}, ErrUsernameAlreadyTaken
	}
	if emailOwner, ok := m.byEmail[user.Email]; ok && (!held || emailOwner != holderID) {
		return models.User{}, ErrEmailAlreadyExists
	}

	var expiry *time.Time
	if user.VerifyCodeExpiry != nil {
		expiry = timePtr(*user.VerifyCodeExpiry)
	}

	if held {
		existing := m.users[holderID]
		delete(m.byEmail, existing.Email)
		existing.Email = user.Email
		existing.PasswordHash = user.PasswordHash
		existing.VerifyCode = user.VerifyCode
		existing.VerifyCodeExpiry = expiry
		existing.IsAcceptingMessages = true
		existing.CreatedAt = user.CreatedAt
		m.byEmail[existing.Email] = existing.UserID
		delete(m.messages, holderID)
		return copyUser(existing), nil
	}

	m.nextUserID++
	created := &models.User{
		UserID:              m.nextUserID,
		Username:            user.Username,
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		VerifyCode:          user.VerifyCode,
		VerifyCodeExpiry:    expiry,
		IsVerified:          false,
		IsAcceptingMessages: true,
		CreatedAt:           user.CreatedAt,
	}
	m.users[created.UserID] = created
	m.byUsername[created.Username] = created.UserID
	m.byEmail[created.Email] = created.UserID

	return copyUser(created), nil
}

func (m *MemoryStorage) UpdatePendingUser(_ context.Context, userID int64, passwordHash, code string, expiresAt time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok || user.IsVerified {
		return models.User{}, ErrUserAlreadyVerified
	}
	user.PasswordHash = passwordHash
	user.VerifyCode = code
	user.VerifyCodeExpiry = timePtr(expiresAt)

	return copyUser(user), nil
}

func (m *MemoryStorage) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return copyUser(user), nil
}

func (m *MemoryStorage) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.findByIndex(m.byUsername, username)
}

func (m *MemoryStorage) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.findByIndex(m.byEmail, email)
}

func (m *MemoryStorage) FindUserByIdentifier(_ context.Context, identifier string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if user, err := m.findByIndex(m.byEmail, identifier); err == nil {
		return user, nil
	}
	return m.findByIndex(m.byUsername, identifier)
}

func (m *MemoryStorage) findByIndex(index map[string]int64, key string) (models.User, error) {
	id, ok := index[key]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return copyUser(m.users[id]), nil
}

func (m *MemoryStorage) SetVerificationCode(_ context.Context, userID int64, code string, expiresAt time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	user.VerifyCode = code
	user.VerifyCodeExpiry = timePtr(expiresAt)

	return copyUser(user), nil
}

func (m *MemoryStorage) MarkVerified(_ context.Context, userID int64, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok || user.VerifyCode != code {
		return ErrVerificationCodeChanged
	}
	user.IsVerified = true
	user.VerifyCode = ""
	user.VerifyCodeExpiry = nil

	return nil
}

func (m *MemoryStorage) SetAcceptingMessages(_ context.Context, userID int64, accepting bool) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	user.IsAcceptingMessages = accepting

	return copyUser(user), nil
}

func (m *MemoryStorage) AppendMessage(_ context.Context, msg models.Message) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[msg.UserID]
	if !ok || !user.IsAcceptingMessages {
		return models.Message{}, ErrNotAcceptingMessages
	}

	m.nextSeq++
	m.messages[msg.UserID] = append(m.messages[msg.UserID], memoryMessage{seq: m.nextSeq, msg: msg})

	return msg, nil
}

func (m *MemoryStorage) ListMessages(_ context.Context, userID int64) ([]models.Message, error) {
	m.mu.RLock()
	stored := slices.Clone(m.messages[userID])
	m.mu.RUnlock()

	slices.SortStableFunc(stored, func(a, b memoryMessage) int {
		if c := b.msg.CreatedAt.Compare(a.msg.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	messages := make([]models.Message, 0, len(stored))
	for _, s := range stored {
		messages = append(messages, s.msg)
	}
	return messages, nil
}

func (m *MemoryStorage) RecentMessages(_ context.Context, userID int64, limit int) ([]models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.messages[userID]
	if limit <= 0 {
		return []models.Message{}, nil
	}
	if len(stored) > limit {
		stored = stored[len(stored)-limit:]
	}

	messages := make([]models.Message, 0, len(stored))
	for _, s := range stored {
		messages = append(messages, s.msg)
	}
	return messages, nil
}

func (m *MemoryStorage) DeleteMessage(_ context.Context, userID int64, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.messages[userID]
	idx := slices.IndexFunc(stored, func(s memoryMessage) bool { return s.msg.MessageID == messageID })
	if idx < 0 {
		return ErrMessageNotFound
	}
	m.messages[userID] = slices.Delete(stored, idx, idx+1)

	return nil
}
