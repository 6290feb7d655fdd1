package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/generate", h.Generate)
	r.Post("/explain", h.Explain)
	return r
}
