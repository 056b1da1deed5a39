package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/localnerve/articles-api/internal/repository"
)

// ErrInvalidCredentials is returned when no user matches both user name and password
var ErrInvalidCredentials = errors.New("Invalid userName or password")

// TokenConfig holds the signing settings for issued tokens
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Lifetime time.Duration
}

// Claims is the token payload. The user name is the only identity claim.
type Claims struct {
	UniqueName string `json:"unique_name"`
	jwt.RegisteredClaims
}

// Token is the body returned by the token endpoint
type Token struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

// AuthService issues and verifies bearer tokens
type AuthService struct {
	users repository.UserRepository
	cfg   TokenConfig
	now   func() time.Time
}

// NewAuthService creates an AuthService that looks credentials up in users
func NewAuthService(users repository.UserRepository, cfg TokenConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg, now: time.Now}
}

// IssueToken mints a token for the user whose name and password both match exactly.
// Passwords are stored and compared in plaintext.
func (s *AuthService) IssueToken(ctx context.Context, userName, password string) (*Token, error) {
	if userName == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	for i := range users {
		if users[i].UserName == userName && users[i].Password == password {
			signed, err := s.sign(users[i].UserName)
			if err != nil {
				return nil, err
			}
			return &Token{AccessToken: signed, Username: users[i].UserName}, nil
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *AuthService) sign(userName string) (string, error) {
	now := s.now()
	claims := Claims{
		UniqueName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature, issuer, audience and lifetime, returning the claims
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(s.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims.UniqueName == "" {
		return nil, errors.New("invalid token: missing unique_name")
	}
	return claims, nil
}
