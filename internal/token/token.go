// Package token issues and verifies the bearer credentials that gate
// every note operation.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the verified content of a credential.
type Claims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a credential for the given user. The expiry is fixed at the
// configured TTL; there is no implicit renewal, an expired credential
// forces a fresh login.
func (s *Service) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify resolves a credential to its claims. Every failure mode
// (missing, malformed, wrong signature, expired) collapses into
// apperr.ErrUnauthenticated.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, apperr.ErrUnauthenticated
	}

	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}

	idStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, apperr.ErrUnauthenticated
	}

	return &Claims{UserID: userID, ExpiresAt: expiry.Time}, nil
}
