package course

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
)

var (
	ErrInvalidName = errors.New("course name must be at least 2 characters")
	ErrInvalidYear = errors.New(`year must be one of "Y1", "Y2" or "Y3"`)
	ErrSlugTaken   = errors.New("a course with this name and year already exists")
)

type Service interface {
	Create(ctx context.Context, claims *auth.Claims, dto CreateCourseDTO) (*Course, error)
	List(ctx context.Context) ([]Course, error)
}

type service struct {
	repo CourseRepository
}

func NewService(repo CourseRepository) Service {
	return &service{repo: repo}
}

// Create adds a user-made course. The slug is derived from name and
// year and doubles as the uniqueness key.
func (s *service) Create(ctx context.Context, claims *auth.Claims, dto CreateCourseDTO) (*Course, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, ErrInvalidName
	}
	year := Year(strings.TrimSpace(dto.Year))
	if !year.IsValid() {
		return nil, ErrInvalidYear
	}

	slug := slugify(name + "-" + string(year))
	existing, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	ownerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	c := &Course{
		Name:     name,
		Slug:     slug,
		Year:     year,
		IsGlobal: false,
		OwnerID:  &ownerID,
	}
	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Failed to create course")
		return nil, err
	}

	log.WithField("course_id", c.ID).Info("Course created")
	return c, nil
}

func (s *service) List(ctx context.Context) ([]Course, error) {
	return s.repo.List()
}
