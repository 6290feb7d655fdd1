package attempt

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Answer records the option a taker picked for one question, addressed
// by the question's position in the quiz.
type Answer struct {
	QuestionIndex int `json:"questionIndex"`
	SelectedIndex int `json:"selectedIndex"`
}

// AnswerList maps the answer sequence onto a jsonb column.
type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan type %T into AnswerList", value)
	}
}

// Attempt is one completed take of a quiz. Attempts are immutable once
// submitted; retaking a quiz creates a new row.
type Attempt struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Answers   AnswerList `gorm:"type:jsonb;not null" json:"answers"`
	Score     int        `gorm:"not null" json:"score"`
	Total     int        `gorm:"not null" json:"total"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
