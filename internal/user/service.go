package user

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("email, name and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidName        = errors.New("name must be 2-50 characters")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 10

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*UserResponse, error)
	// UpsertOAuthUser resolves an OAuth sign-in to a local account,
	// creating one without a password hash on first sign-in.
	UpsertOAuthUser(ctx context.Context, email, name string) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo UserRepository
}

func NewService(repo UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	name := strings.TrimSpace(dto.Name)
	if email == "" || name == "" || dto.Password == "" {
		return nil, ErrMissingFields
	}
	if len(dto.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return nil, ErrInvalidName
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         RoleUser,
	}
	if err := s.repo.Create(&u); err != nil {
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return toResponse(&u), nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	// OAuth-only accounts have no password hash and cannot log in with one.
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return toResponse(u), nil
}

func (s *service) UpsertOAuthUser(ctx context.Context, email, name string) (*UserResponse, error) {
	log := config.WithContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingFields
	}

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return toResponse(u), nil
	}

	if name = strings.TrimSpace(name); name == "" {
		name = email
	}
	created := User{
		Email: email,
		Name:  name,
		Role:  RoleUser,
	}
	if err := s.repo.Create(&created); err != nil {
		return nil, err
	}

	log.WithField("user_id", created.ID).Info("User created from OAuth sign-in")
	return toResponse(&created), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
