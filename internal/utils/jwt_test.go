package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestJWTUtil_GenerateToken(t *testing.T) {
	now := issuedAt
	jwtUtil := NewJWTUtil("secret", fixedClock(&now))

	tokenString, claims, err := jwtUtil.GenerateToken("a@b.com", "7", "student")

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "a@b.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, issuedAt.Add(24*time.Hour), claims.ExpiresAt.Time.UTC())
	assert.Equal(t, issuedAt, claims.IssuedAt.Time.UTC())
}

func TestJWTUtil_GenerateToken_UniqueIDs(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", nil)

	_, first, err := jwtUtil.GenerateToken("a@b.com", "7", "student")
	require.NoError(t, err)
	_, second, err := jwtUtil.GenerateToken("a@b.com", "7", "student")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestJWTUtil_ValidateToken(t *testing.T) {
	now := issuedAt
	jwtUtil := NewJWTUtil("secret", fixedClock(&now))

	tokenString, _, _ := jwtUtil.GenerateToken("a@b.com", "7", "admin")

	claims, err := jwtUtil.ValidateToken(tokenString)

	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", nil)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTUtil_ValidateToken_ExpiryBoundary(t *testing.T) {
	now := issuedAt
	jwtUtil := NewJWTUtil("secret", fixedClock(&now))
	tokenString, _, err := jwtUtil.GenerateToken("a@b.com", "7", "student")
	require.NoError(t, err)

	now = issuedAt.Add(24*time.Hour - time.Nanosecond)
	_, err = jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)

	now = issuedAt.Add(24 * time.Hour)
	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.True(t, IsExpired(err))

	now = issuedAt.Add(48 * time.Hour)
	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", nil)
	jwtUtil2 := NewJWTUtil("secret2", nil)

	tokenString, _, _ := jwtUtil1.GenerateToken("a@b.com", "7", "student")

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", nil)
	claims := &JWTClaims{
		Email: "a@b.com",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	// Sign with the same secret, as the key type is compatible for HMAC algorithms
	tokenString, _ := token.SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
	assert.ErrorIs(t, err, jwt.ErrTokenUnverifiable)
}

func TestJWTUtil_ValidateToken_MissingExpiry(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", nil)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{Email: "a@b.com", Role: "student"})
	tokenString, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestJWTUtil_ValidateToken_MissingIdentity(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", nil)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}
