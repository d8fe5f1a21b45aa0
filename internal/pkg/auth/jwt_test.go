package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "k", TokenIssuer: "alumnihub", AccessTokenExp: time.Hour})
	require.True(t, svc.Enabled())

	token, expiresAt, err := svc.GenerateAdminToken("ops@example.org")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
	assert.True(t, LooksLikeJWT(token))

	claims, err := svc.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.org", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "k", TokenIssuer: "alumnihub"})

	other, _, err := NewJWTService(JWTConfig{SecretKey: "other", TokenIssuer: "alumnihub"}).GenerateAdminToken("x")
	require.NoError(t, err)
	_, err = svc.ValidateToken(other)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	wrongIssuer, _, err := NewJWTService(JWTConfig{SecretKey: "k", TokenIssuer: "elsewhere"}).GenerateAdminToken("x")
	require.NoError(t, err)
	_, err = svc.ValidateToken(wrongIssuer)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	_, err = svc.ValidateToken("")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	_, err = svc.ValidateToken("not.a.jwt")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidFormat))

	member := &Claims{Role: "member", RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "alumnihub",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, member).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = svc.ValidateAdminToken(signed)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestJWTService_Disabled(t *testing.T) {
	var svc *JWTService
	assert.False(t, svc.Enabled())
	assert.False(t, NewJWTService(JWTConfig{}).Enabled())
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer  abc ")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	token, err = ExtractBearerToken("bearer xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc"} {
		_, err := ExtractBearerToken(header)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidFormat), "header %q", header)
	}
}

func TestCheckSecret(t *testing.T) {
	hash, err := HashSecretWithCost("open sesame", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckSecret(hash, "open sesame"))
	assert.False(t, CheckSecret(hash, "open sesame!"))
	assert.False(t, CheckSecret("not-a-hash", "open sesame"))
}
