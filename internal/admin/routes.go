package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)
	r.Use(auth.RequireAdmin)

	r.Get("/users", h.ListUsers)
	r.Get("/quizzes", h.ListQuizzes)
	return r
}
