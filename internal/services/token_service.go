package services

import (
	"errors"
	"time"

	"errorswag/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Bearer tokens expire after a fixed 24 hours; there is no refresh flow.
const tokenTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed token. Callers only need the single outcome.
var ErrInvalidToken = errors.New("token is not valid")

// TokenPayload is the identity carried inside a bearer token.
type TokenPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenService signs and verifies bearer tokens with the configured secret.
type TokenService struct {
	secret []byte
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{secret: []byte(cfg.JWTSecret)}
}

// Sign issues a token for the payload with the fixed expiry.
func (s *TokenService) Sign(p TokenPayload) (string, error) {
	claims := jwt.MapClaims{
		"id":       p.ID,
		"username": p.Username,
		"email":    p.Email,
		"role":     p.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify yields the original payload or ErrInvalidToken.
func (s *TokenService) Verify(token string) (*TokenPayload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenPayload{
		ID:       uint(id),
		Username: username,
		Email:    email,
		Role:     role,
	}, nil
}
