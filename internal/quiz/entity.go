package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Question is a value object embedded in its quiz; it has no identity of
// its own and is stored inside the quiz row.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

type Quiz struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Questions   QuestionList `gorm:"type:jsonb;not null" json:"questions"`
	Visibility  Visibility   `gorm:"type:text;not null;default:'public';index" json:"visibility"`
	Tags        StringList   `gorm:"type:jsonb" json:"tags"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}
