package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"catalog_service/internal/models"
	"catalog_service/internal/repository"
)

const (
	defaultSessionTTL = 24 * time.Hour
	sessionTokenBytes = 32
)

// AuthService handles user auth logic
type AuthService struct {
	authRepo repository.Authorization
	sessions repository.Sessions // nil: tokens are not persisted
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService builds the auth service. With a nil session store issued
// tokens are not kept and CheckSession only tests that an id was supplied.
func NewAuthService(repo repository.Authorization, sessions repository.Sessions, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{authRepo: repo, sessions: sessions, ttl: ttl, now: time.Now}
}

// Authenticate matches username and password digest and issues a session token.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (AuthResult, error) {
	if username == "" || password == "" {
		return AuthResult{}, ErrCredentialsRequired
	}

	u, err := s.authRepo.GetByCredentials(ctx, username, hashPassword(password))
	if err != nil {
		return AuthResult{}, err
	}
	if u == nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return AuthResult{}, err
	}

	if s.sessions != nil {
		err := s.sessions.Save(ctx, models.Session{
			Token:     token,
			UserID:    u.ID,
			Username:  u.Username,
			ExpiresAt: s.now().Add(s.ttl).UTC(),
		})
		if err != nil {
			return AuthResult{}, fmt.Errorf("save session for user %d: %w", u.ID, err)
		}
	}

	return AuthResult{UserID: u.ID, Username: u.Username, Token: token}, nil
}

// CheckSession reports whether sessionID identifies a session. Without a
// session store any non-empty id is accepted.
func (s *AuthService) CheckSession(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	if s.sessions == nil {
		return true, nil
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return sess != nil && !sess.Expired(s.now()), nil
}

// helper: deterministic unsalted digest, compatible with stored credentials
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// helper: 32 random bytes, URL-safe base64 without padding
func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
