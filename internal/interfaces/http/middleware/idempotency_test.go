package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redispkg "wanderly.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	return srv
}

func newIdempotencyRouter(userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(UserIDKey, userID)
		c.Next()
	})
	r.Use(IdempotencyMiddleware())
	r.POST("/finalize", handler)
	return r
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyMiddleware())
	r.POST("/finalize", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodPost, "/finalize", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestIdempotencyMiddleware_ReplaysStoredResponse(t *testing.T) {
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	userID := uuid.New()
	calls := 0
	r := newIdempotencyRouter(userID, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"success": true, "commission": "150.00"})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/finalize", nil)
		req.Header.Set(IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "150.00")
		if i == 1 {
			assert.Equal(t, "true", w.Header().Get("X-Idempotency-Hit"))
		}
	}

	// The handler only ran once; the second response came from Redis.
	assert.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	userID := uuid.New()
	srv.Set(fmt.Sprintf("idempotency:%s:key-1", userID), "processing")

	r := newIdempotencyRouter(userID, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/finalize", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_IDEMPOTENCY_CONFLICT")
}

func TestIdempotencyMiddleware_FailedResponseNotCached(t *testing.T) {
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	userID := uuid.New()
	calls := 0
	r := newIdempotencyRouter(userID, func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient token balance"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/finalize", nil)
	req.Header.Set(IdempotencyHeader, "key-2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	// The failure dropped the lock, so a retry reaches the handler.
	req = httptest.NewRequest(http.MethodPost, "/finalize", nil)
	req.Header.Set(IdempotencyHeader, "key-2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, calls)
}
