package attempt

import (
	"time"

	"github.com/google/uuid"
)

type SubmitDTO struct {
	QuizID  uuid.UUID `json:"quiz_id"`
	Answers []Answer  `json:"answers"`
}

type AttemptResponse struct {
	ID        uuid.UUID  `json:"id"`
	QuizID    uuid.UUID  `json:"quiz_id"`
	Answers   AnswerList `json:"answers"`
	Score     int        `json:"score"`
	Total     int        `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

// QuizStats aggregates the attempts against one quiz, for its owner.
type QuizStats struct {
	QuizID       uuid.UUID `json:"quiz_id"`
	AttemptCount int64     `json:"attempt_count"`
	AverageScore float64   `json:"average_score"`
	BestScore    int       `json:"best_score"`
}
