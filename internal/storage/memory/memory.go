package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"geoalert/internal/storage"
	"geoalert/pkg/e"
)

// KV keeps everything in process memory. Used for local runs and tests.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (m *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "memory.KV.Get"
	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, key, e.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (m *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, "memory.KV.Set", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *KV) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, "memory.KV.Delete", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *KV) Scan(ctx context.Context, prefix string) ([]storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, "memory.KV.Scan", err)
	}

	m.mu.RLock()
	out := make([]storage.Entry, 0)
	for k, v := range m.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, storage.Entry{Key: k, Value: append([]byte(nil), v...)})
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
