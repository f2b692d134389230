package models

import "time"

// User is an account that owns a public handle and an anonymous inbox.
// Credential and verification fields never leave the server.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the public handle messages are addressed to.
	// It becomes immutable once the account is verified.
	Username string `json:"username"`

	// Email is the unique address the verification code is sent to.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's secret.
	PasswordHash string `json:"-"`

	// VerifyCode is the pending one-time code. Empty once verified.
	VerifyCode string `json:"-"`

	// VerifyCodeExpiry is the moment the pending code stops being accepted.
	// Nil once verified.
	VerifyCodeExpiry *time.Time `json:"-"`

	// IsVerified gates login.
	IsVerified bool `json:"is_verified"`

	// IsAcceptingMessages gates public submissions to the inbox.
	IsAcceptingMessages bool `json:"accepting_messages"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CodeExpired reports whether the pending code can no longer be used at now.
// A missing expiry counts as expired.
func (u User) CodeExpired(now time.Time) bool {
	return u.VerifyCodeExpiry == nil || u.VerifyCodeExpiry.Before(now)
}

// Profile is the public view of an account shown to anonymous senders.
type Profile struct {
	Username            string `json:"username"`
	IsAcceptingMessages bool   `json:"accepting_messages"`
}

// Profile returns the public view of u.
func (u User) Profile() Profile {
	return Profile{Username: u.Username, IsAcceptingMessages: u.IsAcceptingMessages}
}
