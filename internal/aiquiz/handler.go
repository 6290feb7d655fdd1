package aiquiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/quizforge/quizforge/internal/config"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type generateRequest struct {
	Content       string `json:"content"`
	QuestionCount int    `json:"questionCount"`
	Difficulty    string `json:"difficulty"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// Generate accepts either a JSON body with inline content or a
// multipart form with a "document" file upload.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readGenerateInput(w, r)
	if !ok {
		return
	}

	set, err := h.service.Generate(r.Context(), in)
	if err != nil {
		h.writeGenerateError(r, w, err)
		return
	}
	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) readGenerateInput(w http.ResponseWriter, r *http.Request) (GenerateInput, bool) {
	var in GenerateInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			config.Error(w, http.StatusBadRequest, "invalid multipart form")
			return in, false
		}
		file, header, err := r.FormFile("document")
		if err != nil {
			config.Error(w, http.StatusBadRequest, "document file is required")
			return in, false
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			config.Error(w, http.StatusBadRequest, "failed to read document")
			return in, false
		}

		count, err := strconv.Atoi(r.FormValue("questionCount"))
		if err != nil {
			config.Error(w, http.StatusBadRequest, "questionCount must be a number")
			return in, false
		}

		in.Document = data
		in.Filename = header.Filename
		in.QuestionCount = count
		in.Difficulty = Difficulty(r.FormValue("difficulty"))
		return in, true
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return in, false
	}
	in.Content = req.Content
	in.QuestionCount = req.QuestionCount
	in.Difficulty = Difficulty(req.Difficulty)
	return in, true
}

func (h *Handler) writeGenerateError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrContentTooShort),
		errors.Is(err, ErrCountOutOfRange),
		errors.Is(err, ErrInvalidDifficulty):
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var extErr *ExtractionError
	if errors.As(err, &extErr) {
		config.Error(w, http.StatusUnprocessableEntity, extErr.Error())
		return
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		body := map[string]any{"error": "generation failed"}
		// Raw model output is a debugging aid, never shown in production.
		if config.IsDevelopment() {
			body["details"] = genErr.Error()
			body["raw"] = genErr.Raw
		}
		config.JSON(w, http.StatusBadGateway, body)
		return
	}

	config.WithContext(r.Context()).WithError(err).Error("quiz generation failed")
	config.Error(w, http.StatusBadGateway, "generation failed")
}

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	var in ExplainInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	explanation, err := h.service.Explain(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidExplainInput) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("explanation failed")
		config.Error(w, http.StatusBadGateway, "failed to generate explanation")
		return
	}
	config.JSON(w, http.StatusOK, explainResponse{Explanation: explanation})
}
