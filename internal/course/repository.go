package course

import (
	"errors"

	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(c *Course) error
	// List returns every course ordered by name; the catalogue is small
	// and shared, so there is no pagination.
	List() ([]Course, error)
	FindBySlug(slug string) (*Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(c *Course) error {
	return r.db.Create(c).Error
}

func (r *courseRepository) List() ([]Course, error) {
	var courses []Course
	err := r.db.Order("name ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindBySlug(slug string) (*Course, error) {
	var c Course
	if err := r.db.First(&c, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
