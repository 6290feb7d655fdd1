package aiquiz

import (
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

// GeneratedQuestionSet is the ephemeral result of one generation call. It
// is returned to the caller for review and is never persisted here; saving
// it goes through the regular quiz creation flow.
type GeneratedQuestionSet struct {
	Questions      []quiz.Question `json:"questions"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	RequestedCount int             `json:"requestedCount"`
	ActualCount    int             `json:"actualCount"`
	Difficulty     Difficulty      `json:"difficulty"`
}

// GenerateInput carries either inline content or an uploaded document.
type GenerateInput struct {
	Content       string
	Document      []byte
	Filename      string
	QuestionCount int
	Difficulty    Difficulty
}

type ExplainInput struct {
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	UserAnswer   *int     `json:"userAnswer,omitempty"`
}
