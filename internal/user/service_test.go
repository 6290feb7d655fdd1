package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*User)}
}

func (r *fakeUserRepo) Create(u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	clone := *u
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		resp, err := svc.Register(ctx, RegisterDTO{
			Email:    "  Alice@Example.COM ",
			Name:     "Alice",
			Password: "supersecret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Email != "alice@example.com" {
			t.Errorf("email should be lowercased and trimmed, got %q", resp.Email)
		}
		if resp.Role != RoleUser {
			t.Errorf("new accounts default to user role, got %q", resp.Role)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		dto := RegisterDTO{Email: "bob@example.com", Name: "Bob", Password: "supersecret"}
		if _, err := svc.Register(ctx, dto); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}
		if _, err := svc.Register(ctx, dto); !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		_, err := svc.Register(ctx, RegisterDTO{Email: "c@example.com", Name: "Cy", Password: "short"})
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("NameBounds", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		for _, name := range []string{"X", strings.Repeat("n", 51)} {
			_, err := svc.Register(ctx, RegisterDTO{Email: "d@example.com", Name: name, Password: "supersecret"})
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("name %q: expected ErrInvalidName, got %v", name, err)
			}
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		_, err := svc.Register(ctx, RegisterDTO{Email: "e@example.com"})
		if !errors.Is(err, ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Register(ctx, RegisterDTO{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "supersecret",
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Login(ctx, LoginDTO{Email: "ALICE@example.com", Password: "supersecret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Email != "alice@example.com" {
			t.Errorf("unexpected email %q", resp.Email)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginDTO{Email: "alice@example.com", Password: "wrongwrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginDTO{Email: "nobody@example.com", Password: "supersecret"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unknown accounts must fail the same way, got %v", err)
		}
	})

	t.Run("OAuthOnlyAccount", func(t *testing.T) {
		if _, err := svc.UpsertOAuthUser(ctx, "oauth@example.com", "OAuth User"); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		_, err := svc.Login(ctx, LoginDTO{Email: "oauth@example.com", Password: "supersecret"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("password login on an OAuth-only account must fail, got %v", err)
		}
	})
}
