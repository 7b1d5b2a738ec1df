package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/users/login",
		LoginRateLimitMiddleware(rps, burst, newTestLogger()),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		},
	)
	return router
}

func doRateLimitedRequest(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
	req.RemoteAddr = remoteAddr
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginRateLimitMiddleware_AllowsWithinBudget(t *testing.T) {
	router := newRateLimitedRouter(100, 5)

	for i := 0; i < 5; i++ {
		recorder := doRateLimitedRequest(router, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}

func TestLoginRateLimitMiddleware_RejectsWhenExhausted(t *testing.T) {
	// rps near zero so the bucket never refills during the test.
	router := newRateLimitedRouter(0.0001, 2)

	assert.Equal(t, http.StatusOK, doRateLimitedRequest(router, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doRateLimitedRequest(router, "10.0.0.1:1234").Code)

	recorder := doRateLimitedRequest(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("Retry-After"))
}

func TestLoginRateLimitMiddleware_PerIPBudgets(t *testing.T) {
	router := newRateLimitedRouter(0.0001, 1)

	assert.Equal(t, http.StatusOK, doRateLimitedRequest(router, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRateLimitedRequest(router, "10.0.0.1:1234").Code)

	// A different IP has its own bucket.
	assert.Equal(t, http.StatusOK, doRateLimitedRequest(router, "10.0.0.2:1234").Code)
}
