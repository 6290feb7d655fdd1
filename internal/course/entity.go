package course

import (
	"time"

	"github.com/google/uuid"
)

// Course groups quizzes by study programme year. Global courses are
// pre-made by admins and have no owner.
type Course struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string     `gorm:"type:text;not null" json:"name"`
	Slug      string     `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Year      Year       `gorm:"type:text;not null" json:"year"`
	IsGlobal  bool       `gorm:"not null;default:false" json:"is_global"`
	OwnerID   *uuid.UUID `gorm:"type:uuid" json:"owner_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
