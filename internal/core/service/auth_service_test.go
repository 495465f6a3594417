package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

type stubUserRepo struct {
	users       map[string]*domain.User
	createCalls int
	lastCreated *domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.createCalls++
	r.lastCreated = cloneUser(user)
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	stored := cloneUser(user)
	if stored.ID == "" {
		stored.ID = user.Username
	}
	r.users[stored.Username] = cloneUser(stored)
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	hasher := NewBcryptHasher(DefaultBcryptCost)
	tokens := NewJWTTokenService("secret", 0)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "afriyan",
		Password: "pass123",
		Email:    "afriyan@rental-cars.com",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected exactly one Create call, got %d", repo.createCalls)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewBcryptHasher(DefaultBcryptCost).Verify("pass123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}

	// Every other field must reach the repository unchanged.
	created := repo.lastCreated
	if created.Username != "afriyan" || created.Email != "afriyan@rental-cars.com" || created.Role != domain.RoleUser {
		t.Fatalf("non-password fields mutated: %+v", created)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not stamped: %+v", created)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	input := ports.RegisterInput{Username: "bob", Password: "pass", Role: domain.RoleUser}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Password: "s3cret", Email: "carol@rental-cars.com", Role: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	decoded, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if decoded.Username != "carol" || decoded.Role != domain.RoleAdmin {
		t.Fatalf("unexpected decoded principal: %+v", decoded)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Login(context.Background(), "ghost", "pass")
	var ce *domain.ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a ClientError, got %v", err)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Password: "goodpass", Role: domain.RoleUser,
	})

	_, err := svc.Login(context.Background(), "dave", "badpass")
	var ce *domain.ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a ClientError, got %v", err)
	}
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestAuthService_GetUserByID_Passthrough(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "erin", Password: "pw123456", Role: domain.RoleUser,
	})

	user, err := svc.GetUserByID(context.Background(), "erin")
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if user.Username != "erin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUserByID(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ValidateRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	principal := &domain.User{
		ID:       "3",
		Username: "afriyan",
		Role:     "user",
		Email:    "afriyan@rental-cars.com",
	}

	if !svc.ValidateRole(principal, "user") {
		t.Fatalf("ValidateRole(user, user) = false, want true")
	}
	if svc.ValidateRole(principal, "admin") {
		t.Fatalf("ValidateRole(user, admin) = true, want false")
	}
	// No hierarchy: admin does not satisfy a user-level check.
	admin := &domain.User{ID: "4", Username: "superfranky", Role: "admin"}
	if svc.ValidateRole(admin, "user") {
		t.Fatalf("admin implicitly granted user role, want flat equality")
	}
	// Case-sensitive.
	if svc.ValidateRole(principal, "User") {
		t.Fatalf("role comparison ignored case, want case-sensitive")
	}
	if svc.ValidateRole(nil, "user") {
		t.Fatalf("nil principal validated, want false")
	}
}

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "frank",
		Password: "round-trip-pw",
		Email:    "frank@rental-cars.com",
		Role:     domain.RoleUser,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "frank", "round-trip-pw")
	if err != nil {
		t.Fatalf("login after register failed: %v", err)
	}

	decoded, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("token validation failed: %v", err)
	}
	if decoded.Username != "frank" {
		t.Fatalf("decoded username %q, want %q", decoded.Username, "frank")
	}
}

func TestAuthService_GenerateToken_Delegates(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	user := &domain.User{
		ID: "3", Username: "afriyan", Role: domain.RoleUser,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	decoded, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if decoded.ID != "3" || decoded.Username != "afriyan" {
		t.Fatalf("unexpected decoded principal: %+v", decoded)
	}
}
