// README: JWT issuing and verification backed by a redis session store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims holds the verified token data used by downstream middleware.
type Claims struct {
	UserID    string
	SessionID string
}

// Verifier verifies a raw bearer token string and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Manager issues and verifies HS256 bearer tokens. Every issued token has a
// matching session entry in redis with the same TTL; verification requires
// both a valid signature and a live session, so revocation takes effect
// immediately.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	sessions *SessionStore
}

func NewManager(secret string, ttl time.Duration, sessions *SessionStore) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, sessions: sessions}
}

// Issue signs a token for the user and records its session.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        sessionID,
		Issuer:    "fairgadi",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	if err := m.sessions.Create(ctx, sessionID, userID, m.ttl); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry, then confirms the session is still
// live. Any failure collapses to ErrInvalidToken; callers have no use for
// the distinction.
func (m *Manager) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	live, err := m.sessions.IsLive(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !live {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: claims.Subject, SessionID: claims.ID}, nil
}

// Revoke ends the session; tokens carrying its ID stop verifying.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	return m.sessions.Revoke(ctx, sessionID)
}
