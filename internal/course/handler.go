package course

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list courses")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.Create(r.Context(), claims, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidYear):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrSlugTaken):
			config.Error(w, http.StatusConflict, err.Error())
		default:
			config.WithContext(r.Context()).WithError(err).Error("Failed to create course")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, c)
}
