package attempt

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/quiz"
)

var (
	ErrNoAnswers      = errors.New("at least one answer is required")
	ErrStatsForbidden = errors.New("only the quiz owner can view attempt stats")
)

// InvalidAnswersError wraps a scoring rejection so the handler can tell
// a malformed submission apart from infrastructure failures.
type InvalidAnswersError struct {
	Reason string
}

func (e *InvalidAnswersError) Error() string { return e.Reason }

type Service interface {
	Submit(ctx context.Context, claims *auth.Claims, dto SubmitDTO) (*AttemptResponse, error)
	ListMine(ctx context.Context, claims *auth.Claims) ([]AttemptResponse, error)
	Stats(ctx context.Context, claims *auth.Claims, quizID uuid.UUID) (*QuizStats, error)
}

type service struct {
	repo    AttemptRepository
	quizzes quiz.QuizService
}

func NewService(repo AttemptRepository, quizzes quiz.QuizService) Service {
	return &service{repo: repo, quizzes: quizzes}
}

// Submit grades and records one take of a quiz. The quiz is loaded
// through the quiz service so the visibility rules apply unchanged: a
// private quiz a caller may not see cannot be attempted either.
func (s *service) Submit(ctx context.Context, claims *auth.Claims, dto SubmitDTO) (*AttemptResponse, error) {
	log := config.WithContext(ctx)

	if len(dto.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	q, err := s.quizzes.Get(ctx, claims, dto.QuizID)
	if err != nil {
		return nil, err
	}

	score, total, err := ScoreAnswers(q.Questions, dto.Answers)
	if err != nil {
		return nil, &InvalidAnswersError{Reason: err.Error()}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	a := &Attempt{
		UserID:  userID,
		QuizID:  dto.QuizID,
		Answers: dto.Answers,
		Score:   score,
		Total:   total,
	}
	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to record attempt")
		return nil, err
	}

	log.WithField("attempt_id", a.ID).Info("Attempt recorded")
	return toResponse(a), nil
}

func (s *service) ListMine(ctx context.Context, claims *auth.Claims) ([]AttemptResponse, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]AttemptResponse, 0, len(attempts))
	for i := range attempts {
		responses = append(responses, *toResponse(&attempts[i]))
	}
	return responses, nil
}

// Stats aggregates attempts on a quiz for its owner or an admin.
func (s *service) Stats(ctx context.Context, claims *auth.Claims, quizID uuid.UUID) (*QuizStats, error) {
	q, err := s.quizzes.Get(ctx, claims, quizID)
	if err != nil {
		return nil, err
	}
	if !auth.CanModify(claims, q.OwnerID) {
		return nil, ErrStatsForbidden
	}
	return s.repo.StatsByQuiz(quizID)
}

func toResponse(a *Attempt) *AttemptResponse {
	return &AttemptResponse{
		ID:        a.ID,
		QuizID:    a.QuizID,
		Answers:   a.Answers,
		Score:     a.Score,
		Total:     a.Total,
		CreatedAt: a.CreatedAt,
	}
}
