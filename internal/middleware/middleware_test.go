package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoalert/internal/domain"
	"geoalert/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAPIKeyMiddleware(t *testing.T) {
	t.Parallel()

	h := APIKeyMiddleware("secret")(okHandler)

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "guess", http.StatusUnauthorized},
		{"prefix", "secre", http.StatusUnauthorized},
		{"valid", "secret", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/gov/stats", nil)
		if tc.key != "" {
			req.Header.Set(APIKeyHeader, tc.key)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, tc.want, rr.Code, tc.name)
	}
}

func TestAPIKeyMiddleware_EmptyKeyRejectsEverything(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	APIKeyMiddleware("")(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLimit_PerIP(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := Limit(ctx, 1, 2, time.Minute, newTestLogger())(okHandler)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))
	assert.Equal(t, http.StatusInternalServerError, call("no-port"))
}

func TestRateLimiter_SweepForgetsIdleVisitors(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	l := &rateLimiter{visitors: map[string]*visitor{}, limit: 1, burst: 1, ttl: time.Minute, now: func() time.Time { return now }}

	l.getVisitor("a")
	now = now.Add(2 * time.Minute)
	l.getVisitor("b")
	l.sweep()

	_, hasA := l.visitors["a"]
	_, hasB := l.visitors["b"]
	assert.False(t, hasA)
	assert.True(t, hasB)
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"author_id":"a","text":"hi"}`))
	got, err := BindJSON[domain.SubmitReplyRequest](req, func(r *domain.SubmitReplyRequest) { r.ThreadID = "t1" })
	require.NoError(t, err)
	assert.Equal(t, domain.SubmitReplyRequest{ThreadID: "t1", AuthorID: "a", Text: "hi"}, got)

	for _, body := range []string{
		`not json`,
		`{"author_id":"a","text":"hi","x":1}`,
		`{"author_id":"a","text":"hi"} {}`,
		`{"author_id":"a"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		_, err := BindJSON[domain.SubmitReplyRequest](req, func(r *domain.SubmitReplyRequest) { r.ThreadID = "t1" })
		assert.True(t, errors.Is(err, e.ErrValidation), "body %q: %v", body, err)
	}
}
