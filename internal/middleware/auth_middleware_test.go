package middleware

import (
	"crypto/sha256"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/auth"
)

const (
	testSecret    = "s3cret-admin-token"
	testJWTSecret = "jwt-signing-key"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(gate *AdminAuth) *gin.Engine {
	r := gin.New()
	r.GET("/admin", gate.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject": c.GetString(ContextAdminSubject),
			"method":  c.GetString(ContextAuthMethod),
		})
	})
	return r
}

func doRequest(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.APIResponse[dto.Empty]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}

func signToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@example.org",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func newGate(t *testing.T) *AdminAuth {
	t.Helper()
	hash, err := auth.HashSecretWithCost(testSecret, bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: testJWTSecret})
	return NewAdminAuth(hash, jwtService, zerolog.Nop())
}

func TestAdminAuth_Disabled(t *testing.T) {
	gate := NewAdminAuth("", nil, zerolog.Nop())
	assert.False(t, gate.Enabled())

	w := doRequest(newProtectedRouter(gate), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_RequireAdmin(t *testing.T) {
	gate := newGate(t)
	router := newProtectedRouter(gate)

	adminToken, _, err := auth.NewJWTService(auth.JWTConfig{SecretKey: testJWTSecret}).GenerateAdminToken("ops@example.org")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   dto.ErrorCode
		wantMethod string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeUnauthorized},
		{name: "shared secret", header: "Bearer " + testSecret, wantStatus: http.StatusOK, wantMethod: "token"},
		{name: "wrong shared secret", header: "Bearer nope", wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeInvalidToken},
		{name: "admin jwt", header: "Bearer " + adminToken, wantStatus: http.StatusOK, wantMethod: "jwt"},
		{
			name:       "member jwt",
			header:     "Bearer " + signToken(t, "member", time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrorCodeForbidden,
		},
		{
			name:       "expired jwt",
			header:     "Bearer " + signToken(t, auth.RoleAdmin, time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeExpiredToken,
		},
		{name: "malformed jwt", header: "Bearer a.b.c", wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMethod, body["method"])
				return
			}
			detail := decodeError(t, w)
			assert.Equal(t, tt.wantCode, detail.Type)
			assert.Equal(t, tt.wantStatus, detail.Code)
		})
	}
}

func TestAdminAuth_SharedSecretIsRemembered(t *testing.T) {
	gate := newGate(t)
	router := newProtectedRouter(gate)

	for i := 0; i < 3; i++ {
		w := doRequest(router, "Bearer "+testSecret)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	_, cached := gate.verified.Load(sha256.Sum256([]byte(testSecret)))
	assert.True(t, cached)
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(RateLimitConfig{Limit: 2, Period: time.Minute}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "198.51.100.7:4242"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, dto.ErrorCodeRateLimited, decodeError(t, w).Type)
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
