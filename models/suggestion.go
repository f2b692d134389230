package models

// Tone is the voice requested for generated suggestions.
type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
	ToneFunny        Tone = "funny"
)

// Length is the requested size of each suggestion.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

const (
	MinSuggestionCount     = 1
	MaxSuggestionCount     = 6
	DefaultSuggestionCount = 4
)

// SuggestionOptions tunes a suggestion request.
type SuggestionOptions struct {
	Tone   Tone   `json:"tone,omitempty"`
	Length Length `json:"length,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// DefaultSuggestionOptions returns tone=friendly, length=short, count=4.
func DefaultSuggestionOptions() SuggestionOptions {
	return SuggestionOptions{Tone: ToneFriendly, Length: LengthShort, Count: DefaultSuggestionCount}
}

// WithDefaults fills every zero field of o from [DefaultSuggestionOptions].
func (o SuggestionOptions) WithDefaults() SuggestionOptions {
	d := DefaultSuggestionOptions()
	if o.Tone == "" {
		o.Tone = d.Tone
	}
	if o.Length == "" {
		o.Length = d.Length
	}
	if o.Count == 0 {
		o.Count = d.Count
	}
	return o
}
