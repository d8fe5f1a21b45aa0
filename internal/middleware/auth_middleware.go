package middleware

import (
	"crypto/sha256"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/auth"
)

// Context keys set by AdminAuth.
const (
	ContextAdminSubject = "adminSubject"
	ContextAuthMethod   = "authMethod"
)

// AdminAuth gates admin routes behind a bearer token. The token is either the shared
// secret whose bcrypt hash is configured, or an HS256 JWT carrying the admin role.
type AdminAuth struct {
	tokenHash  string
	jwtService *auth.JWTService
	logger     zerolog.Logger

	// verified remembers digests of shared secrets that already matched the hash.
	verified sync.Map
}

// NewAdminAuth creates the admin gate. With neither a hash nor a JWT secret configured every request passes.
func NewAdminAuth(tokenHash string, jwtService *auth.JWTService, logger zerolog.Logger) *AdminAuth {
	m := &AdminAuth{tokenHash: tokenHash, jwtService: jwtService, logger: logger}
	if !m.Enabled() {
		logger.Warn().Msg("Admin authentication is disabled: no token hash or JWT secret configured")
	}
	return m
}

// Enabled reports whether any credential is configured.
func (m *AdminAuth) Enabled() bool {
	return m.tokenHash != "" || m.jwtService.Enabled()
}

// RequireAdmin rejects requests without a valid admin bearer token.
func (m *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			AbortWithError(c, dto.NewErrorDetail(http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header must be \"Bearer <token>\""))
			return
		}

		if m.matchesSharedSecret(token) {
			c.Set(ContextAdminSubject, "shared-token")
			c.Set(ContextAuthMethod, "token")
			c.Next()
			return
		}

		if m.jwtService.Enabled() && auth.LooksLikeJWT(token) {
			claims, err := m.jwtService.ValidateAdminToken(token)
			if err == nil {
				c.Set(ContextAdminSubject, claims.Subject)
				c.Set(ContextAuthMethod, "jwt")
				c.Next()
				return
			}
			m.reject(c, err)
			return
		}

		m.reject(c, apperrors.ErrTokenInvalid)
	}
}

func (m *AdminAuth) matchesSharedSecret(token string) bool {
	if m.tokenHash == "" {
		return false
	}
	digest := sha256.Sum256([]byte(token))
	if _, ok := m.verified.Load(digest); ok {
		return true
	}
	if !auth.CheckSecret(m.tokenHash, token) {
		return false
	}
	m.verified.Store(digest, struct{}{})
	return true
}

func (m *AdminAuth) reject(c *gin.Context, err error) {
	m.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Str("clientIp", c.ClientIP()).Msg("Admin authentication failed")

	detail := dto.NewErrorDetail(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Authentication failed").
		WithDetails("Invalid token")
	switch {
	case errors.Is(err, apperrors.ErrTokenExpired):
		detail = dto.NewErrorDetail(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Authentication failed").
			WithDetails("Token has expired")
	case errors.Is(err, apperrors.ErrInvalidFormat):
		detail.WithDetails("Invalid token format")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		detail = dto.NewErrorDetail(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied").
			WithDetails("Token does not carry the admin role")
	}
	AbortWithError(c, detail)
}
