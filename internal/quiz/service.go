package quiz

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type QuizService interface {
	Create(ctx context.Context, claims *auth.Claims, payload Payload) (*QuizResponse, []ValidationError, error)
	Get(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*QuizResponse, error)
	Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, dto UpdateQuizDTO) (*QuizResponse, []ValidationError, error)
	Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error
	List(ctx context.Context, claims *auth.Claims, query ListQuery) (*ListResponse, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

// Create runs the candidate through the validation gate and persists it.
// The owner always comes from the authenticated identity, never from the
// payload.
func (s *quizService) Create(ctx context.Context, claims *auth.Claims, payload Payload) (*QuizResponse, []ValidationError, error) {
	log := config.WithContext(ctx)

	validated, violations := Validate(payload)
	if violations != nil {
		return nil, violations, nil
	}

	ownerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	validated.OwnerID = ownerID

	if err := s.repo.Create(validated); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, nil, err
	}

	log.WithField("quiz_id", validated.ID).Info("Quiz created")
	return toResponse(validated, claims), nil, nil
}

// Get masks private quizzes the caller may not see as not-found, so the
// endpoint never leaks their existence. claims may be nil for anonymous
// callers.
func (s *quizService) Get(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*QuizResponse, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}

	if q.Visibility == VisibilityPrivate && !auth.CanModify(claims, q.OwnerID) {
		return nil, ErrNotFound
	}

	return toResponse(q, claims), nil
}

// Update replaces the provided fields and re-validates the resulting
// aggregate, so a partial update can never break the quiz invariants.
func (s *quizService) Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, dto UpdateQuizDTO) (*QuizResponse, []ValidationError, error) {
	log := config.WithContext(ctx)

	q, err := s.findModifiable(claims, id)
	if err != nil {
		return nil, nil, err
	}

	merged := Payload{
		Title:       q.Title,
		Description: q.Description,
		Questions:   q.Questions,
		Visibility:  string(q.Visibility),
		Tags:        q.Tags,
	}
	if dto.Title != nil {
		merged.Title = *dto.Title
	}
	if dto.Description != nil {
		merged.Description = *dto.Description
	}
	if dto.Questions != nil {
		merged.Questions = *dto.Questions
	}
	if dto.Visibility != nil {
		merged.Visibility = *dto.Visibility
	}
	if dto.Tags != nil {
		merged.Tags = *dto.Tags
	}

	validated, violations := Validate(merged)
	if violations != nil {
		return nil, violations, nil
	}

	// Identity and ownership are immutable.
	q.Title = validated.Title
	q.Description = validated.Description
	q.Questions = validated.Questions
	q.Visibility = validated.Visibility
	q.Tags = validated.Tags

	if err := s.repo.Save(q); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, nil, err
	}

	log.WithField("quiz_id", q.ID).Info("Quiz updated")
	return toResponse(q, claims), nil, nil
}

func (s *quizService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	log := config.WithContext(ctx)

	q, err := s.findModifiable(claims, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(q.ID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", q.ID).Info("Quiz deleted")
	return nil
}

func (s *quizService) List(ctx context.Context, claims *auth.Claims, query ListQuery) (*ListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	var viewerID *uuid.UUID
	if claims != nil {
		if id, err := uuid.Parse(claims.UserID); err == nil {
			viewerID = &id
		}
	}

	quizzes, total, err := s.repo.List(viewerID, query.Tags, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for i := range quizzes {
		q := &quizzes[i]
		summaries = append(summaries, QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			Visibility:    q.Visibility,
			Tags:          q.Tags,
			QuestionCount: len(q.Questions),
			CreatedAt:     q.CreatedAt,
			IsOwner:       claims != nil && claims.UserID == q.OwnerID.String(),
		})
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	return &ListResponse{
		Quizzes: summaries,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// findModifiable loads a quiz for a mutating operation, applying the
// uniform masking policy: unseen private quizzes read as not-found, public
// ones the caller may not touch as forbidden.
func (s *quizService) findModifiable(claims *auth.Claims, id uuid.UUID) (*Quiz, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}
	if !auth.CanModify(claims, q.OwnerID) {
		if q.Visibility == VisibilityPrivate {
			return nil, ErrNotFound
		}
		return nil, ErrForbidden
	}
	return q, nil
}

func toResponse(q *Quiz, claims *auth.Claims) *QuizResponse {
	return &QuizResponse{
		ID:          q.ID,
		OwnerID:     q.OwnerID,
		Title:       q.Title,
		Description: q.Description,
		Questions:   q.Questions,
		Visibility:  q.Visibility,
		Tags:        q.Tags,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
		IsOwner:     claims != nil && claims.UserID == q.OwnerID.String(),
	}
}
