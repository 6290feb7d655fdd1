package admin

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge/internal/user"
)

type AdminRepository interface {
	ListUsers() ([]UserOverview, error)
	ListQuizzes() ([]QuizOverview, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) ListUsers() ([]UserOverview, error) {
	var users []UserOverview
	err := r.db.
		Model(&user.User{}).
		Select("users.id, users.email, users.name, users.role, users.created_at, count(quizzes.id) AS quiz_count").
		Joins("LEFT JOIN quizzes ON quizzes.owner_id = users.id").
		Group("users.id").
		Order("users.created_at DESC").
		Scan(&users).Error
	return users, err
}

func (r *adminRepository) ListQuizzes() ([]QuizOverview, error) {
	var quizzes []QuizOverview
	err := r.db.
		Table("quizzes").
		Select("quizzes.id, quizzes.title, quizzes.visibility, quizzes.owner_id, quizzes.created_at, jsonb_array_length(quizzes.questions) AS question_count, users.name AS owner_name, users.email AS owner_email").
		Joins("JOIN users ON users.id = quizzes.owner_id").
		Order("quizzes.created_at DESC").
		Scan(&quizzes).Error
	return quizzes, err
}
