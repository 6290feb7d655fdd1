package auth

import (
	"net/http"
	"os"

	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// SetSessionCookie writes the signed token as an HttpOnly cookie.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int(AccessTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   !config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
