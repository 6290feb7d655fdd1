package auth

import (
	"net/http"
	"strings"

	"github.com/quizforge/quizforge/internal/config"
)

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token. Authorization runs
// before any validation or generation work so unauthorized requests never
// reach the model call.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Rejected invalid token")
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
	})
}

// OptionalAuthMiddleware attaches claims when a valid token is present and
// lets anonymous requests through. Used by public read endpoints.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenStr := tokenFromRequest(r); tokenStr != "" {
			if claims, err := ValidateJWT(tokenStr); err == nil {
				r = r.WithContext(WithUserClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin must be stacked after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := GetUserClaimsFromContext(r.Context())
		if err != nil {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if claims.Role != "admin" {
			config.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
