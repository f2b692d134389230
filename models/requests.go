package models

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest carries the code a user received by email.
type VerifyRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// ResendRequest asks for a fresh verification code.
type ResendRequest struct {
	Username string `json:"username"`
}

// LoginRequest authenticates by email or username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SendMessageRequest is an anonymous submission to a public handle.
type SendMessageRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// SuggestRequest asks for message starters for a handle.
// Zero values fall back to the defaults in [DefaultSuggestionOptions].
type SuggestRequest struct {
	Username string `json:"username"`
	SuggestionOptions
}

// UsernameQuery is used by lookups that take a bare handle.
type UsernameQuery struct {
	Username string `json:"username"`
}
