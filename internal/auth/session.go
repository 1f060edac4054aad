package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identifies an authenticated shopper for the duration of a
// browsing session. It is threaded explicitly through handlers and
// services, never held as ambient state, and is lost on logout.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

var ErrInvalidToken = errors.New("invalid session token")

// TokenManager issues and parses HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

func (m *TokenManager) Issue(s Session) (string, error) {
	claims := jwt.MapClaims{
		"name":  s.Name,
		"email": s.Email,
		"admin": s.Admin,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) Parse(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	s := Session{}
	if name, ok := claims["name"].(string); ok {
		s.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if admin, ok := claims["admin"].(bool); ok {
		s.Admin = admin
	}
	return s, nil
}
