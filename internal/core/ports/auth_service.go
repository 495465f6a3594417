package ports

import (
	"context"

	"github.com/rental-cars/catalog-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new principal.
// Password is the plaintext supplied by the caller; it exists only for the
// duration of the Register call and is persisted as a hash.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// AuthService orchestrates credential verification, token issuance and role
// checks.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	ValidateToken(token string) (*domain.User, error)
	ValidateRole(user *domain.User, role string) bool
}
