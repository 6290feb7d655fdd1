package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.QuizID == uuid.Nil {
		config.Error(w, http.StatusBadRequest, "quiz_id is required")
		return
	}

	resp, err := h.service.Submit(r.Context(), claims, dto)
	if err != nil {
		var invalid *InvalidAnswersError
		switch {
		case errors.Is(err, ErrNoAnswers):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &invalid):
			config.Error(w, http.StatusBadRequest, invalid.Reason)
		case errors.Is(err, quiz.ErrNotFound):
			config.Error(w, http.StatusNotFound, "quiz not found")
		default:
			config.WithContext(r.Context()).WithError(err).Error("Failed to submit attempt")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	attempts, err := h.service.ListMine(r.Context(), claims)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list attempts")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}

func (h *Handler) QuizStats(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	stats, err := h.service.Stats(r.Context(), claims, quizID)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrNotFound):
			config.Error(w, http.StatusNotFound, "quiz not found")
		case errors.Is(err, ErrStatsForbidden):
			config.Error(w, http.StatusForbidden, err.Error())
		default:
			config.WithContext(r.Context()).WithError(err).Error("Failed to load attempt stats")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
