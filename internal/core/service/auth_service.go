package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

// AuthService orchestrates login, registration, principal lookup and role
// checks. It holds no mutable state; every operation is independent.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Login verifies the credentials and returns a signed bearer token.
// An unknown username and a wrong password both surface as client errors;
// storage or signing failures propagate untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, nil
}

// Register hashes the plaintext password and persists the user with the hash
// substituted; all other fields are stored unchanged. No uniqueness pre-check
// happens here: a duplicate username is surfaced by the repository.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// GetUserByID is a direct passthrough to the repository. Authorization is the
// caller's responsibility.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GenerateToken issues a token for an already-validated principal.
func (s *AuthService) GenerateToken(user *domain.User) (string, error) {
	return s.tokens.Issue(user)
}

// ValidateToken decodes and verifies a bearer token. Validation failures
// propagate as-is; they are not reinterpreted as client errors.
func (s *AuthService) ValidateToken(token string) (*domain.User, error) {
	return s.tokens.Validate(token)
}

// ValidateRole is a flat, case-sensitive equality check. There is no role
// hierarchy: admin is not implicitly granted user-level access.
func (s *AuthService) ValidateRole(user *domain.User, role string) bool {
	if user == nil {
		return false
	}
	return user.Role == role
}
