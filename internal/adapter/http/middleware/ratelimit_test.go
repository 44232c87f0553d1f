package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	request := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, request("1.2.3.4:1000"))
	assert.Equal(t, http.StatusTooManyRequests, request("1.2.3.4:2000"), "port must not split the bucket")
	assert.Equal(t, http.StatusOK, request("5.6.7.8:1000"))
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("1.1.1.1")
	now = now.Add(time.Hour)
	rl.getLimiter("2.2.2.2")

	rl.CleanupLimiters()

	assert.NotContains(t, rl.limiters, "1.1.1.1")
	assert.Contains(t, rl.limiters, "2.2.2.2")
}
