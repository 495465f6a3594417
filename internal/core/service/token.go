package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rental-cars/catalog-api/internal/core/domain"
)

// principalClaims embeds the full principal record in the token payload,
// minus the password hash, which is stripped before signing.
type principalClaims struct {
	UserID    string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	jwt.RegisteredClaims
}

// JWTTokenService signs and validates HS256 bearer tokens. The secret is
// process-wide configuration, injected once at construction and never logged.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService returns a token service signing with secret. A ttl of
// zero (the default) issues tokens without an expiry claim, so they stay
// valid indefinitely.
func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

// Issue serializes the principal and signs it. The resulting token is
// bearer-style: possession implies the rights of the embedded principal.
func (s *JWTTokenService) Issue(user *domain.User) (string, error) {
	claims := principalClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and reconstructs the embedded principal.
// It does not consult storage: the decoded copy is authoritative for the
// lifetime of the token, even if the stored record has since changed.
func (s *JWTTokenService) Validate(token string) (*domain.User, error) {
	claims := &principalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.User{
		ID:        claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
		CreatedAt: claims.CreatedAt,
		UpdatedAt: claims.UpdatedAt,
	}, nil
}
