package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizforge/quizforge/internal/admin"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/attempt"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/course"
	"github.com/quizforge/quizforge/internal/middlewares"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	QuizHandler    *quiz.Handler
	CourseHandler  *course.Handler
	AttemptHandler *attempt.Handler
	AIQuizHandler  *aiquiz.Handler
	AdminHandler   *admin.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Get("/google/login", cfg.UserHandler.GoogleLogin)
		r.Get("/google/callback", cfg.UserHandler.GoogleCallback)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/courses", course.Routes(cfg.CourseHandler))
	r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
	r.Mount("/ai", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/admin", admin.Routes(cfg.AdminHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
	})

	return r
}
