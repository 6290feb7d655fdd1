package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(service QuizService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, violations, err := h.service.Create(r.Context(), claims, payload)
	if err != nil {
		log.WithError(err).Error("Failed to create quiz")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if violations != nil {
		config.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"errors": violations,
		})
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "quiz created",
		"quiz":    resp,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := quizIDFromRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), auth.OptionalUserClaims(r.Context()), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Error(w, http.StatusNotFound, "quiz not found")
			return
		}
		log.WithError(err).Error("Failed to fetch quiz")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := quizIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, violations, err := h.service.Update(r.Context(), claims, id, dto)
	if err != nil {
		h.writeModifyError(w, r, err, "Failed to update quiz")
		return
	}
	if violations != nil {
		config.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"errors": violations,
		})
		return
	}

	log.WithField("quiz_id", id).Debug("Quiz update handled")
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "quiz updated",
		"quiz":    resp,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := quizIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), claims, id); err != nil {
		h.writeModifyError(w, r, err, "Failed to delete quiz")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "quiz deleted"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	query := ListQuery{}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		query.Limit = limit
	}
	if tagsParam := r.URL.Query().Get("tags"); tagsParam != "" {
		for _, tag := range strings.Split(tagsParam, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				query.Tags = append(query.Tags, tag)
			}
		}
	}

	resp, err := h.service.List(r.Context(), auth.OptionalUserClaims(r.Context()), query)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeModifyError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		config.Error(w, http.StatusNotFound, "quiz not found")
	case errors.Is(err, ErrForbidden):
		config.Error(w, http.StatusForbidden, "you can only modify your own quizzes")
	default:
		config.WithContext(r.Context()).WithError(err).Error(logMsg)
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func quizIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		config.Error(w, http.StatusBadRequest, "quiz id required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
		return uuid.Nil, false
	}
	return id, true
}
