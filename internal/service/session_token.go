package service

import (
	"fmt"
	"time"

	"grammarlab/internal/config"
	"grammarlab/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates bearer tokens for anonymous learner
// sessions. A token binds a client to the hint session it opened.
type TokenService interface {
	IssueSessionToken(sessionID string) (string, error)

	// ValidateSessionToken returns the session ID the token was issued for.
	ValidateSessionToken(tokenString string) (string, error)
}

// sessionClaims embeds the standard claims plus our session binding.
type sessionClaims struct {
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

const sessionTokenType = "session"

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokenService{secret: []byte(cfg.JWTSecret), ttl: ttl}, nil
}

// IssueSessionToken implements TokenService
func (s *tokenService) IssueSessionToken(sessionID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken implements TokenService
func (s *tokenService) ValidateSessionToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", domain.NewUnauthorizedError("Invalid session token")
	}
	if !token.Valid || claims.TokenType != sessionTokenType || claims.SessionID == "" {
		return "", domain.NewUnauthorizedError("Invalid session token")
	}
	return claims.SessionID, nil
}
