package service_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"geoalert/internal/domain"
	"geoalert/internal/metrics"
	"geoalert/internal/service"
	"geoalert/internal/storage/memory"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

// Srinagar, two citizens about 140 m apart, and a village ~50 km away.
var (
	pointA   = domain.Point{Lat: 34.0837, Lng: 74.7973}
	pointB   = domain.Point{Lat: 34.0845, Lng: 74.7985}
	pointFar = domain.Point{Lat: 34.5200, Lng: 74.9000}
)

func ptr[T any](v T) *T { return &v }

// recordingPublisher keeps every event. With a handler set it also calls it
// synchronously, which makes dispatch deterministic in tests.
type recordingPublisher struct {
	mu      sync.Mutex
	events  []domain.Event
	handler func(context.Context, domain.Event)
}

func (p *recordingPublisher) Publish(ctx context.Context, ev domain.Event) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	h := p.handler
	p.mu.Unlock()
	if h != nil {
		h(ctx, ev)
	}
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

// engine is the whole alert pipeline on in-memory storage with inline event
// delivery.
type engine struct {
	kv         *memory.KV
	pub        *recordingPublisher
	metrics    *metrics.Metrics
	store      *service.AlertStore
	dispatcher *service.Dispatcher
	tracker    *service.ReadStateTracker
	center     *service.NotificationCenter
	reports    service.ReportService
	convo      *service.ConversationAssembler
}

func newEngine(t *testing.T, outbox service.NotificationOutbox) *engine {
	t.Helper()

	logger := newTestLogger()
	m := metrics.New()
	kv := memory.NewKV()
	pub := &recordingPublisher{}
	clock := stepClock(time.Date(2025, 5, 7, 10, 0, 0, 0, time.UTC))
	store := service.NewAlertStore(kv, pub, m, logger).WithClock(clock)
	d := service.NewDispatcher(store, kv, outbox, service.DispatcherConfig{RadiusKm: 10, Timeout: time.Second}, m, logger).
		WithClock(clock)
	pub.handler = d.Handle
	tracker := service.NewReadStateTracker(memory.NewReadState(), m, logger)

	return &engine{
		kv:         kv,
		pub:        pub,
		metrics:    m,
		store:      store,
		dispatcher: d,
		tracker:    tracker,
		center:     service.NewNotificationCenter(d, tracker, logger),
		reports:    service.NewReportService(store, store, d, 200*time.Millisecond, logger),
		convo:      service.NewConversationAssembler(store),
	}
}

// stepClock returns increasing timestamps one second apart.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Second)
		return now
	}
}
