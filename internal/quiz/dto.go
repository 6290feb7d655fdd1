package quiz

import (
	"time"

	"github.com/google/uuid"
)

type UpdateQuizDTO struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Questions   *[]Question `json:"questions"`
	Visibility  *string     `json:"visibility"`
	Tags        *[]string   `json:"tags"`
}

type QuizResponse struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Questions   QuestionList `json:"questions"`
	Visibility  Visibility   `json:"visibility"`
	Tags        StringList   `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	IsOwner     bool         `json:"is_owner"`
}

// QuizSummary omits the question bodies; listings only need the count.
type QuizSummary struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Visibility    Visibility `json:"visibility"`
	Tags          StringList `json:"tags"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     time.Time  `json:"created_at"`
	IsOwner       bool       `json:"is_owner"`
}

type ListQuery struct {
	Page  int
	Limit int
	Tags  []string
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ListResponse struct {
	Quizzes    []QuizSummary `json:"quizzes"`
	Pagination Pagination    `json:"pagination"`
}
