package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"golang.org/x/oauth2"
)

const oauthStateCookie = "oauthstate"

type Handler struct {
	service     Service
	oauthConfig *oauth2.Config
}

func NewHandler(service Service, oauthConfig *oauth2.Config) *Handler {
	return &Handler{service: service, oauthConfig: oauthConfig}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrInvalidName):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrEmailTaken):
			config.Error(w, http.StatusConflict, err.Error())
		default:
			log.WithError(err).Error("Failed to register user")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user created",
		"user":    resp,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.WithError(err).Error("Failed to log user in")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := auth.GenerateJWT(resp.ID.String(), string(resp.Role), auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	auth.SetSessionCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  resp,
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		config.Error(w, http.StatusServiceUnavailable, "google sign-in is not configured")
		return
	}

	state, err := newOAuthState()
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   !config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.oauthConfig.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if h.oauthConfig == nil {
		config.Error(w, http.StatusServiceUnavailable, "google sign-in is not configured")
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		config.Error(w, http.StatusBadRequest, "invalid oauth state")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		config.Error(w, http.StatusBadRequest, "missing authorization code")
		return
	}

	info, err := fetchGoogleUserInfo(r.Context(), h.oauthConfig, code)
	if err != nil {
		log.WithError(err).Error("Google sign-in failed")
		config.Error(w, http.StatusBadGateway, "google sign-in failed")
		return
	}

	resp, err := h.service.UpsertOAuthUser(r.Context(), info.Email, info.Name)
	if err != nil {
		log.WithError(err).Error("Failed to resolve OAuth user")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := auth.GenerateJWT(resp.ID.String(), string(resp.Role), auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	auth.SetSessionCookie(w, token)

	if target := os.Getenv("FRONTEND_URL"); target != "" {
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"user": resp})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, "user not found")
			return
		}
		log.WithError(err).Error("Failed to fetch user")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
