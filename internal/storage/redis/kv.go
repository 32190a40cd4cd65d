package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"geoalert/internal/storage"
	"geoalert/pkg/e"
)

const scanBatch = 256

// KV stores every record as a plain string key under namespace.
type KV struct {
	client    *redis.Client
	namespace string
}

func NewKV(client *redis.Client, namespace string) *KV {
	return &KV{client: client, namespace: namespace}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "redis.KV.Get"

	b, err := k.client.Get(ctx, k.namespace+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %s: %w", op, key, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return b, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Set(ctx, k.namespace+key, value, 0).Err(); err != nil {
		return e.WrapError(ctx, "redis.KV.Set", err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = k.namespace + key
	}
	if err := k.client.Del(ctx, full...).Err(); err != nil {
		return e.WrapError(ctx, "redis.KV.Delete", err)
	}
	return nil
}

// Scan walks the keyspace with SCAN MATCH and fetches values with MGET.
// Keys removed between the two calls are dropped from the result.
func (k *KV) Scan(ctx context.Context, prefix string) ([]storage.Entry, error) {
	const op = "redis.KV.Scan"

	var keys []string
	iter := k.client.Scan(ctx, 0, escapeGlob(k.namespace+prefix)+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if len(keys) == 0 {
		return []storage.Entry{}, nil
	}
	sort.Strings(keys)

	out := make([]storage.Entry, 0, len(keys))
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		vals, err := k.client.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue
			}
			out = append(out, storage.Entry{
				Key:   strings.TrimPrefix(keys[start+i], k.namespace),
				Value: []byte(s),
			})
		}
	}
	return out, nil
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
