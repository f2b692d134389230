package models

import "time"

// Token is an issued or parsed access token.
//
// SignedString holds the compact JWS form sent in the Authorization header.
// UserID is the owner identifier taken from the "sub" claim.
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact serialized token.
func (t Token) String() string {
	return t.SignedString
}
