package app

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/internal/domain"
)

// ErrInvalidToken indicates a token that is malformed, carries a bad
// signature, or has expired.
var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, stateless session tokens.
// Tokens are HS256 JWTs binding an identity under a single process-wide
// secret. There is no server-side session table and no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service. A zero ttl issues tokens
// without an expiry claim.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// Issue produces a signed token binding the given identity.
func (s *TokenService) Issue(id domain.Identity) (string, error) {
	claims := sessionClaims{
		UserID: id.UserID,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(s.now().Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// identity. Any failure maps to ErrInvalidToken; callers never see
// parser internals.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}
	return domain.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
