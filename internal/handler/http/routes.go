package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const defaultRequestTimeout = 30 * time.Second

func (h *Handler) Init() *chi.Mux {
	timeout := h.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(middleware.Timeout(timeout))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, kindNotFound, "Route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, "method_not_allowed", http.StatusText(http.StatusMethodNotAllowed))
	})

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/sign-up", h.signUp)
			r.Post("/sign-in", h.signIn)
			r.Post("/verify-code", h.verifyCode)
			r.Post("/resend-code", h.resendCode)
			r.Get("/check-username-unique", h.checkUsernameUnique)

			r.Post("/send-message", h.sendMessage)
			r.Post("/suggest-messages", h.suggestMessages)
			r.Get("/profile", h.profile)

			r.Get("/version", h.getServerVersion)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/accept-messages", h.getAcceptMessages)
			r.Post("/accept-messages", h.setAcceptMessages)
			r.Get("/get-messages", h.getMessages)
			r.Delete("/delete-message/{messageID}", h.deleteMessage)
			r.Get("/me", h.me)
		})
	})

	return router
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.AllowedOrigins
}
