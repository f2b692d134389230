package models

// APIResponse is the envelope of every JSON response.
//
// Success is false for every failure. Kind is a stable machine-readable
// failure name, Message a human-readable description.
type APIResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// AcceptingResponse reports the current value of the accepting flag.
type AcceptingResponse struct {
	APIResponse
	IsAcceptingMessages bool `json:"accepting_messages"`
}

// MessagesResponse lists an inbox, newest first.
type MessagesResponse struct {
	APIResponse
	Messages []Message `json:"messages"`
}

// SuggestionsResponse carries a batch of message starters.
type SuggestionsResponse struct {
	APIResponse
	Suggestions []string `json:"suggestions"`
}

// AvailabilityResponse answers a handle availability check.
type AvailabilityResponse struct {
	APIResponse
	Available bool `json:"available"`
}

// ProfileResponse carries the public view of an account.
type ProfileResponse struct {
	APIResponse
	User Profile `json:"user"`
}

// AccountResponse carries the owner's own account.
type AccountResponse struct {
	APIResponse
	User User `json:"user"`
}

// VersionResponse carries the running application version.
type VersionResponse struct {
	Version string `json:"version"`
}
