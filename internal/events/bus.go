// Package events delivers alert-store domain events to subscribers.
package events

import (
	"context"
	"log/slog"
	"sync"

	"geoalert/internal/domain"
)

type Handler func(ctx context.Context, ev domain.Event)

// Bus fans every published event out to all subscribers. Each subscriber has
// its own unbounded FIFO drained by a single goroutine, so it sees events in
// publish order and a slow subscriber never blocks the publisher or its peers.
type Bus struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
	closed bool
	wg     sync.WaitGroup
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{logger: logger, subs: make(map[int]*subscriber)}
}

// Subscribe registers handler under name (used for logging). The returned
// function unsubscribes; events already queued for it are still delivered.
func (b *Bus) Subscribe(name string, handler Handler) (unsubscribe func()) {
	s := newSubscriber(name, handler, b.logger)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = s
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		s.run()
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			s.close()
		})
	}
}

// Publish enqueues ev for every subscriber and returns immediately.
func (b *Bus) Publish(_ context.Context, ev domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, s := range b.subs {
		s.push(ev)
	}
}

// Close stops accepting events, lets subscribers drain what is queued and
// waits for them or for ctx.
func (b *Bus) Close(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for id, s := range b.subs {
		s.close()
		delete(b.subs, id)
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type subscriber struct {
	name    string
	handler Handler
	logger  *slog.Logger

	mu     sync.Mutex
	queue  []domain.Event
	closed bool
	wake   chan struct{}
}

func newSubscriber(name string, handler Handler, logger *slog.Logger) *subscriber {
	return &subscriber{
		name:    name,
		handler: handler,
		logger:  logger,
		wake:    make(chan struct{}, 1),
	}
}

func (s *subscriber) push(ev domain.Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
	s.signal()
}

func (s *subscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.signal()
}

func (s *subscriber) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	for {
		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		closed := s.closed
		s.mu.Unlock()

		for _, ev := range batch {
			s.deliver(ev)
		}
		if closed && len(batch) == 0 {
			return
		}
		if len(batch) == 0 {
			<-s.wake
		}
	}
}

func (s *subscriber) deliver(ev domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event handler panicked",
				slog.String("subscriber", s.name),
				slog.String("event", string(ev.Type)),
				slog.Any("panic", r),
			)
		}
	}()
	s.handler(context.Background(), ev)
}
