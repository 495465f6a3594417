package ports

import (
	"context"

	"github.com/rental-cars/catalog-api/internal/core/domain"
)

// UserRepository defines the persistence contract for principals. Lookups
// return domain.ErrUserNotFound on a miss; Create returns domain.ErrUserExists
// on a duplicate username.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
