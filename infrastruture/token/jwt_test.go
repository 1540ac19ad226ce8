package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := newSecret(t)
	issuer := "pathfinder-test"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]any{
			"client": "batch-runner",
		}

		token, err := svc.Generate(claims, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "batch-runner", decoded["client"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Caller cannot override the issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{"iss": "someone-else"}, time.Minute)
		require.NoError(t, err)

		decoded, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{"client": "late"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "elsewhere")
		token, err := other.Generate(map[string]any{"client": "x"}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidIssuer)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other := NewJwtService(newSecret(t), issuer)
		token, err := other.Generate(map[string]any{"client": "x"}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token with unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"iss": issuer,
			"exp": time.Now().Add(time.Minute).Unix(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Decode(signed)
		assert.Error(t, err)
	})
}
