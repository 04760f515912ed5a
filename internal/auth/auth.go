package auth

import (
	"fmt"
	"time"

	"github.com/campus-sports/arena/internal/apperr"
	"github.com/campus-sports/arena/internal/users"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Claims are the JWT claims carried by an access token.
type Claims struct {
	UserID string     `json:"uid"`
	Role   users.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies access tokens and hashes passwords.
type Service struct {
	secret []byte
	clock  clockwork.Clock
}

// New creates an auth Service signing tokens with the given secret.
func New(secret string, clock clockwork.Clock) *Service {
	return &Service{
		secret: []byte(secret),
		clock:  clock,
	}
}

// HashPassword hashes a plaintext password with bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (s *Service) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a HS256 token for the given user.
func (s *Service) IssueToken(userID string, role users.Role) (string, error) {
	now := s.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "campus-arena",
		},
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token string, returning its claims.
func (s *Service) VerifyToken(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !tok.Valid {
		return nil, apperr.New(apperr.KindInvalid, "invalid token")
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, apperr.New(apperr.KindInvalid, "invalid token claims")
	}
	return claims, nil
}
