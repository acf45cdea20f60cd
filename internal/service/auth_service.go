package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookslist/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL matches the 30-minute session length of the HTTP API.
const DefaultTokenTTL = 30 * time.Minute

// TokenConfig holds the signing parameters for session tokens.
// Secret and Issuer come from config; Audience defaults to Issuer and TTL to
// DefaultTokenTTL when left empty.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

func (c TokenConfig) withDefaults() TokenConfig {
	if c.Audience == "" {
		c.Audience = c.Issuer
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTokenTTL
	}
	return c
}

// Claims defines the session JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	Name   string `json:"name"`
	UserID int    `json:"user_id"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	users  repository.Users
	tokens TokenConfig
}

func NewAuthService(users repository.Users, tokens TokenConfig) *AuthService {
	return &AuthService{users: users, tokens: tokens.withDefaults()}
}

// SignUp validates credentials, hashes the password and creates a new user.
func (s *AuthService) SignUp(ctx context.Context, name, password string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if strings.TrimSpace(password) == "" {
		return 0, fmt.Errorf("password is required: %w", ErrValidation)
	}

	existing, err := s.users.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("user %q: %w", name, ErrConflict)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.users.Create(ctx, name, hash)
}

// GenerateToken validates credentials and returns a signed session JWT.
func (s *AuthService) GenerateToken(ctx context.Context, name, password string) (string, error) {
	u, err := s.users.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", fmt.Errorf("user %q: %w", name, ErrNotFound)
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID, u.Name)
}

// ParseToken verifies signature, signing method, issuer, audience and expiry,
// returning the embedded claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Ensure HMAC signing is used
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.tokens.Secret), nil
		},
		jwt.WithIssuer(s.tokens.Issuer),
		jwt.WithAudience(s.tokens.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (bcrypt compares in constant time)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed session JWT for a user
func (s *AuthService) issueToken(userID int, name string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.tokens.Issuer,
			Audience:  jwt.ClaimStrings{s.tokens.Audience},
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokens.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:   name,
		UserID: userID,
	})
	return token.SignedString([]byte(s.tokens.Secret))
}
