package jwt

import (
	"testing"
	"time"

	"hotelops/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotelops"
	cfg.JWT.Secret = secret
	cfg.JWT.AccessExpireMin = expireMin
	return cfg
}

func TestGenerateToken(t *testing.T) {
	svc := New(testConfig("test-secret", 30))

	token, err := svc.GenerateToken(42, "staff@hotel.com", "receptionist")
	require.NoError(t, err)

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(30*60), token.ExpiresIn)
}

func TestValidateToken(t *testing.T) {
	svc := New(testConfig("test-secret", 30))

	t.Run("valid token round-trips claims", func(t *testing.T) {
		token, err := svc.GenerateToken(42, "staff@hotel.com", "receptionist")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token.AccessToken)
		require.NoError(t, err)

		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "staff@hotel.com", claims.Email)
		assert.Equal(t, "staff@hotel.com", claims.Subject)
		assert.Equal(t, "receptionist", claims.Role)
		assert.NotEmpty(t, claims.TokenID)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		now := time.Now()
		claims := Claims{
			UserID: 42,
			Email:  "staff@hotel.com",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Minute)),
				IssuedAt:  gojwt.NewNumericDate(now.Add(-time.Hour)),
				Subject:   "staff@hotel.com",
			},
		}
		raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
		signed, err := raw.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := New(testConfig("another-secret", 30))
		token, err := other.GenerateToken(42, "staff@hotel.com", "receptionist")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token, err := svc.GenerateToken(42, "staff@hotel.com", "receptionist")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.AccessToken + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		token, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ExtractTokenFromHeader("")
		assert.Error(t, err)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := ExtractTokenFromHeader("Basic abc")
		assert.Error(t, err)
	})
}
