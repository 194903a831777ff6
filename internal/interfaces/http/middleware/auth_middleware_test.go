package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderly.backend/internal/interfaces/http/middleware"
	"wanderly.backend/pkg/jwt"
)

func newAuthRouter(svc *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(svc), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "pemba@example.com", "guide")
	require.NoError(t, err)

	router := newAuthRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "guide")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newAuthRouter(jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	router := newAuthRouter(jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", -time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair(uuid.New(), "pemba@example.com", "guide")
	require.NoError(t, err)

	router := newAuthRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(middleware.UserRoleKey, "tourist")
	}, middleware.RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
