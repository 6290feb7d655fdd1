package attempt

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *Attempt) error
	ListByUser(userID uuid.UUID) ([]Attempt, error)
	StatsByQuiz(quizID uuid.UUID) (*QuizStats, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) ListByUser(userID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) StatsByQuiz(quizID uuid.UUID) (*QuizStats, error) {
	var stats QuizStats
	err := r.db.
		Model(&Attempt{}).
		Select("count(*) AS attempt_count, coalesce(avg(score), 0) AS average_score, coalesce(max(score), 0) AS best_score").
		Where("quiz_id = ?", quizID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	stats.QuizID = quizID
	return &stats, nil
}
