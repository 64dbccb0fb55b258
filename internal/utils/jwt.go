package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed validity window of every issued token
const TokenTTL = 24 * time.Hour

const tokenIssuer = "kiit-connect"

// JWTClaims custom claims for JWT
type JWTClaims struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil. A nil clock means time.Now.
func NewJWTUtil(secretKey string, now func() time.Time) *JWTUtil {
	if now == nil {
		now = time.Now
	}
	return &JWTUtil{secretKey: []byte(secretKey), ttl: TokenTTL, now: now}
}

// GenerateToken signs a claim set for the given identity.
// The issue instant is truncated to whole seconds, which is the resolution of
// the exp claim, so expiry lands exactly TokenTTL after iat.
func (ju *JWTUtil) GenerateToken(email, userID, role string) (string, *JWTClaims, error) {
	issuedAt := ju.now().Truncate(time.Second)
	claims := &JWTClaims{
		Email:  email,
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ju.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, claims, nil
}

// ValidateToken verifies signature and expiry of the token.
// Errors wrap the jwt package sentinels (ErrTokenMalformed,
// ErrTokenSignatureInvalid, ErrTokenUnverifiable, ErrTokenExpired,
// ErrTokenRequiredClaimMissing) so callers can classify them.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ju.secretKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", jwt.ErrTokenMalformed)
	}

	// Expiry is checked here rather than by the parser: the token must be
	// rejected at the expiry instant itself, not one tick after it.
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("exp claim missing: %w", jwt.ErrTokenRequiredClaimMissing)
	}
	if !ju.now().Before(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("token expired at %s: %w", claims.ExpiresAt.Time.Format(time.RFC3339), jwt.ErrTokenExpired)
	}
	if claims.Email == "" || claims.Role == "" {
		return nil, fmt.Errorf("identity claims missing: %w", jwt.ErrTokenRequiredClaimMissing)
	}

	return claims, nil
}

// IsExpired reports whether err came from an expired token
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
