package attempt

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge/internal/quiz"
)

type AttemptContainer struct {
	Handler *Handler
	Service Service
	Repo    AttemptRepository
}

func NewAttemptContainer(db *gorm.DB, quizzes quiz.QuizService) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizzes)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
