package ports

import (
	"context"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username and email uniqueness is enforced by the store itself (unique
// indexes), not by application-level pre-checks.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Usernames resolves user ids to usernames. Ids with no matching user
	// are simply absent from the result map.
	Usernames(ctx context.Context, ids []string) (map[string]string, error)
}
