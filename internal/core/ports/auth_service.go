package ports

import (
	"context"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// UpdateProfileInput carries the optional profile fields a user may change.
// Nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Password *string
}

// AuthService handles registration, login, and profile management.
type AuthService interface {
	// Register creates an account with role "user" and returns a signed
	// token alongside the created user.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}
