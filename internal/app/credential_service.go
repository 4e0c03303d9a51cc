package app

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password
	// was incorrect. Unknown usernames and wrong passwords both map here so
	// the response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists indicates that the username is already registered.
	ErrUserExists = errors.New("user already exists")
)

// CredentialService handles registration and login.
type CredentialService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

// NewCredentialService creates a new credential service.
func NewCredentialService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenService) *CredentialService {
	return &CredentialService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new user with a caller-assigned id. The plaintext
// password is hashed before it reaches the store and is never persisted.
// The username uniqueness check is advisory; the store's unique index is
// the authority, and a unique-violation insert also maps to ErrUserExists.
func (s *CredentialService) Register(ctx context.Context, id int64, username, password, role string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	err = s.users.Create(ctx, &domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return ErrUserExists
	}
	return err
}

// Login authenticates a user and issues a session token embedding the
// user's id and role.
func (s *CredentialService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
}

// LoginVerified issues a session token for a username whose identity was
// established out of band (SSO). Unknown users are not auto-provisioned
// because ids are caller-assigned at registration.
func (s *CredentialService) LoginVerified(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
}
