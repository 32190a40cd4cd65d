package workers_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"geoalert/internal/workers"
)

type countingRebuilder struct {
	calls atomic.Int32
	err   error
}

func (c *countingRebuilder) Rebuild(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestIndexRefresher_RebuildsOnStartAndTick(t *testing.T) {
	t.Parallel()

	rb := &countingRebuilder{}
	w := workers.NewIndexRefresher(rb, 10*time.Millisecond, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return rb.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop on cancel")
	}
}

func TestIndexRefresher_KeepsGoingAfterFailure(t *testing.T) {
	t.Parallel()

	rb := &countingRebuilder{err: errors.New("store unavailable")}
	w := workers.NewIndexRefresher(rb, 5*time.Millisecond, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return rb.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}
