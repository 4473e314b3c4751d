// Package scope issues and verifies the HS256 session token.
package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("scope: invalid token")
	ErrMissingSecret = errors.New("scope: secret is required")
)

// Payload is what the token carries about the caller.
type Payload struct {
	UserID int64
	Email  string
}

// Manager creates and verifies tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ Manager = (*implManager)(nil)

func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	now := m.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: p.UserID,
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	return t.SignedString(m.secret)
}

func (m *implManager) Verify(token string) (Payload, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.Email == "" {
		return Payload{}, ErrInvalidToken
	}
	return Payload{UserID: c.UserID, Email: c.Email}, nil
}

type payloadCtxKey struct{}

// SetPayloadToContext attaches the verified caller to ctx.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, p)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return p, ok
}
