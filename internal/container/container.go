package container

import (
	"context"
	"fmt"
	"os"

	"github.com/quizforge/quizforge/internal/admin"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/attempt"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/course"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/user"
)

type Container struct {
	UserContainer    *user.UserContainer
	QuizContainer    *quiz.QuizContainer
	CourseContainer  *course.CourseContainer
	AttemptContainer *attempt.AttemptContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	AdminContainer   *admin.AdminContainer
}

func New(ctx context.Context) (*Container, error) {
	config.Init()
	auth.Init()

	db, err := config.Connect(os.Getenv("DATABASE_DSN"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&user.User{}, &quiz.Quiz{}, &course.Course{}, &attempt.Attempt{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	userContainer := user.NewUserContainer(db)
	quizContainer := quiz.NewQuizContainer(db)
	courseContainer := course.NewCourseContainer(db)
	attemptContainer := attempt.NewAttemptContainer(db, quizContainer.Service)
	adminContainer := admin.NewAdminContainer(db)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx)
	if err != nil {
		return nil, err
	}

	return &Container{
		UserContainer:    userContainer,
		QuizContainer:    quizContainer,
		CourseContainer:  courseContainer,
		AttemptContainer: attemptContainer,
		AIQuizContainer:  aiQuizContainer,
		AdminContainer:   adminContainer,
	}, nil
}
