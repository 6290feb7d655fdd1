package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey struct{}

var claimsKey = contextKey{}

var ErrNoClaims = errors.New("no user claims in context")

func WithUserClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// OptionalUserClaims returns the caller's claims, or nil for anonymous requests.
func OptionalUserClaims(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// CanModify is the single owner-or-admin predicate used by every mutating
// operation on owned resources.
func CanModify(claims *Claims, ownerID uuid.UUID) bool {
	if claims == nil {
		return false
	}
	return claims.Role == "admin" || claims.UserID == ownerID.String()
}
