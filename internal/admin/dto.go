package admin

import (
	"time"

	"github.com/google/uuid"
)

// UserOverview is one user row in the admin listing, with how many
// quizzes they own.
type UserOverview struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	QuizCount int64     `json:"quiz_count"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizOverview is one quiz row in the admin listing, private quizzes
// included, with its owner resolved.
type QuizOverview struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Visibility    string    `json:"visibility"`
	QuestionCount int64     `json:"question_count"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerName     string    `json:"owner_name"`
	OwnerEmail    string    `json:"owner_email"`
	CreatedAt     time.Time `json:"created_at"`
}
