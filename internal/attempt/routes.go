package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/", h.Submit)
	r.Get("/", h.ListMine)
	r.Get("/quiz/{quizID}/stats", h.QuizStats)
	return r
}
