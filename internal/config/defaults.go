package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "mystery-message",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
			LogLevel:         "info",
		},
		Storage: Storage{
			Driver: StorageDriverMemory,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Mail: Mail{
			Driver: MailDriverLog,
			From:   "Mystery Message <no-reply@mystery-message.local>",
			SMTP: SMTP{
				Port:      587,
				TLSPolicy: "mandatory",
			},
			Resend: Resend{
				BaseURL: "https://api.resend.com",
			},
		},
		Verification: Verification{
			CodeTTL: 10 * time.Minute,
		},
		Suggestions: Suggestions{
			ProviderTimeout: 8 * time.Second,
			OpenAI: OpenAI{
				Model:   "gpt-4o-mini",
				BaseURL: "https://api.openai.com/v1",
			},
			Gemini: Gemini{
				Models:  []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro"},
				BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			},
		},
	}
}
