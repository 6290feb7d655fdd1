package admin

import (
	"net/http"

	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	repo AdminRepository
}

func NewHandler(repo AdminRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListUsers()
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list users")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.repo.ListQuizzes()
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list quizzes")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes})
}
