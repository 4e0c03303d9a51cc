package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taskhub/internal/domain"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	getByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	createFn        func(ctx context.Context, u *domain.User) error
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func newTestCredentialService(users domain.UserRepository) *CredentialService {
	return NewCredentialService(users, NewPasswordHasher(4), NewTokenService([]byte("test-secret"), 0))
}

func TestCredentialService_Register_HashesPassword(t *testing.T) {
	ctx := context.Background()

	var created *domain.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *domain.User) error {
			created = u
			return nil
		},
	}

	svc := newTestCredentialService(users)
	if err := svc.Register(ctx, 1, "alice", "pw1", "user"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if created == nil {
		t.Fatal("expected user to be created")
	}
	if created.ID != 1 || created.Username != "alice" || created.Role != "user" {
		t.Errorf("unexpected user: %+v", created)
	}
	if created.PasswordHash == "" || strings.Contains(created.PasswordHash, "pw1") {
		t.Errorf("plaintext must not reach the store, got %q", created.PasswordHash)
	}
}

func TestCredentialService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()

	createCalled := false
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username}, nil
		},
		createFn: func(ctx context.Context, u *domain.User) error {
			createCalled = true
			return nil
		},
	}

	svc := newTestCredentialService(users)
	if err := svc.Register(ctx, 2, "alice", "pw2", "user"); err != ErrUserExists {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
	if createCalled {
		t.Error("duplicate registration must not reach the store")
	}
}

func TestCredentialService_Register_StoreConflictWins(t *testing.T) {
	ctx := context.Background()

	// Check passes but the insert loses the race; the store's unique
	// index reports the duplicate instead.
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *domain.User) error {
			return domain.ErrDuplicate
		},
	}

	svc := newTestCredentialService(users)
	if err := svc.Register(ctx, 2, "alice", "pw2", "user"); err != ErrUserExists {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestCredentialService_Login_Success(t *testing.T) {
	ctx := context.Background()

	hasher := NewPasswordHasher(4)
	hash, _ := hasher.Hash("pw1")

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 7, Username: "alice", PasswordHash: hash, Role: "admin"}, nil
		},
	}

	tokens := NewTokenService([]byte("test-secret"), 0)
	svc := NewCredentialService(users, hasher, tokens)

	token, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.UserID != 7 || identity.Role != "admin" {
		t.Errorf("token identity mismatch: %+v", identity)
	}
}

func TestCredentialService_Login_FailureIsUndifferentiated(t *testing.T) {
	ctx := context.Background()

	hasher := NewPasswordHasher(4)
	hash, _ := hasher.Hash("correct")

	known := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "alice", PasswordHash: hash}, nil
		},
	}
	unknown := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
	}

	tokens := NewTokenService([]byte("test-secret"), 0)

	_, errWrongPassword := NewCredentialService(known, hasher, tokens).Login(ctx, "alice", "wrong")
	_, errUnknownUser := NewCredentialService(unknown, hasher, tokens).Login(ctx, "nobody", "whatever")

	if errWrongPassword != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if errUnknownUser != ErrInvalidCredentials {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", errUnknownUser)
	}
	if errWrongPassword != errUnknownUser {
		t.Error("both failures must be indistinguishable")
	}
}

func TestCredentialService_Login_StoreError(t *testing.T) {
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, storeErr
		},
	}

	svc := newTestCredentialService(users)
	if _, err := svc.Login(ctx, "alice", "pw1"); err != storeErr {
		t.Errorf("expected store error to surface, got %v", err)
	}
}

func TestCredentialService_LoginVerified(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username == "alice@example.com" {
				return &domain.User{ID: 3, Username: username, Role: "user"}, nil
			}
			return nil, nil
		},
	}

	tokens := NewTokenService([]byte("test-secret"), 0)
	svc := NewCredentialService(users, NewPasswordHasher(4), tokens)

	token, err := svc.LoginVerified(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("LoginVerified: %v", err)
	}
	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.UserID != 3 {
		t.Errorf("expected userID 3, got %d", identity.UserID)
	}

	if _, err := svc.LoginVerified(ctx, "stranger@example.com"); err != ErrInvalidCredentials {
		t.Errorf("unknown SSO user: expected ErrInvalidCredentials, got %v", err)
	}
}
