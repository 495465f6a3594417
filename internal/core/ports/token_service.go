package ports

import "github.com/rental-cars/catalog-api/internal/core/domain"

// TokenService issues and validates stateless bearer tokens. Tokens embed the
// principal record; possession grants the embedded principal's rights. There
// is no server-side token state: nothing is stored and nothing can be revoked.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Validate verifies the signature and reconstructs the embedded principal.
	// The decoded copy is authoritative for the token's lifetime; it is not
	// re-fetched from storage.
	Validate(token string) (*domain.User, error)
}
