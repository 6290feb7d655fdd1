package quiz

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	FindByID(id uuid.UUID) (*Quiz, error)
	Save(q *Quiz) error
	Delete(id uuid.UUID) error
	// List returns the page of quizzes visible to the viewer (public ones,
	// plus the viewer's own when viewerID is set), newest first, and the
	// total matching count.
	List(viewerID *uuid.UUID, tags []string, limit, offset int) ([]Quiz, int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) FindByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) Save(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}

func (r *quizRepository) List(viewerID *uuid.UUID, tags []string, limit, offset int) ([]Quiz, int64, error) {
	scope := func() *gorm.DB {
		tx := r.db.Model(&Quiz{})
		if viewerID != nil {
			tx = tx.Where("visibility = ? OR owner_id = ?", VisibilityPublic, *viewerID)
		} else {
			tx = tx.Where("visibility = ?", VisibilityPublic)
		}
		if len(tags) > 0 {
			tx = tx.Where(r.anyTagCondition(tags))
		}
		return tx
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []Quiz
	err := scope().
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&quizzes).Error
	if err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

// anyTagCondition builds a match-any-of filter over the jsonb tags column:
// one containment check per requested tag, OR-ed together.
func (r *quizRepository) anyTagCondition(tags []string) *gorm.DB {
	cond := r.db.Session(&gorm.Session{NewDB: true})
	var built *gorm.DB
	for _, tag := range tags {
		single, _ := json.Marshal([]string{tag})
		if built == nil {
			built = cond.Where("tags @> ?", string(single))
		} else {
			built = built.Or("tags @> ?", string(single))
		}
	}
	return built
}
