package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/", h.Create)
	})

	return r
}
