package token

import (
	"testing"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerifyFailuresAreIndistinguishable(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	expired := NewService("test-secret", -time.Minute)
	expiredToken, err := expired.Issue(uuid.New())
	require.NoError(t, err)

	otherSecret := NewService("other-secret", time.Hour)
	foreignToken, err := otherSecret.Issue(uuid.New())
	require.NoError(t, err)

	cases := map[string]string{
		"missing":         "",
		"garbage":         "not-a-jwt",
		"expired":         expiredToken,
		"wrong signature": foreignToken,
	}

	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Verify(tok)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
		})
	}
}

func TestVerifyRejectsNonHMACAlgorithm(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	// alg=none token with valid-looking claims must never pass.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestVerifyRequiresUserIDClaim(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}
