package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	// Reads are public; the optional claims widen visibility to the
	// caller's own private quizzes.
	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuthMiddleware)

		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
