package system_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"geoalert/internal/api/handlers/http/system"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	system.NewHandler(newTestLogger(), nil).SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}
}

func TestSystemReady(t *testing.T) {
	t.Parallel()

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	rr := httptest.NewRecorder()
	system.NewHandler(newTestLogger(), map[string]system.Check{"redis": up}).
		SystemReady(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	rr = httptest.NewRecorder()
	system.NewHandler(newTestLogger(), map[string]system.Check{"redis": up, "postgres": down}).
		SystemReady(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d got %d body=%s", http.StatusServiceUnavailable, rr.Code, rr.Body.String())
	}
}
