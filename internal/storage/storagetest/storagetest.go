// Package storagetest holds behaviour suites shared by every storage backend.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"geoalert/internal/storage"
	"geoalert/pkg/e"
)

// ReadState mirrors the read-state repository contract.
type ReadState interface {
	Add(ctx context.Context, recipientID string, notificationIDs ...string) error
	Has(ctx context.Context, recipientID, notificationID string) (bool, error)
	Members(ctx context.Context, recipientID string) ([]string, error)
	Clear(ctx context.Context, recipientID string) error
}

// RunKV exercises a fresh, empty KV.
func RunKV(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "report:missing"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("Get missing: want ErrNotFound, got %v", err)
	}

	mustSet(t, kv, "report:1", `{"id":"1"}`)
	mustSet(t, kv, "report:2", `{"id":"2"}`)
	mustSet(t, kv, "response:1:a", `{"id":"a"}`)
	mustSet(t, kv, "response:1:b", `{"id":"b"}`)
	mustSet(t, kv, "response:10:c", `{"id":"c"}`)
	mustSet(t, kv, "reply%_:x", `{"id":"x"}`)

	got, err := kv.Get(ctx, "report:1")
	if err != nil || string(got) != `{"id":"1"}` {
		t.Fatalf("Get: got %q err %v", got, err)
	}

	// last write wins
	mustSet(t, kv, "report:2", `{"id":"2","v":2}`)
	got, _ = kv.Get(ctx, "report:2")
	if string(got) != `{"id":"2","v":2}` {
		t.Fatalf("overwrite: got %q", got)
	}

	entries, err := kv.Scan(ctx, "response:1:")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if keys := keysOf(entries); fmt.Sprint(keys) != "[response:1:a response:1:b]" {
		t.Fatalf("Scan response:1: = %v", keys)
	}

	// glob and LIKE metacharacters in the prefix are literal
	entries, err = kv.Scan(ctx, "reply%_")
	if err != nil || len(entries) != 1 {
		t.Fatalf("Scan literal prefix: %v %v", keysOf(entries), err)
	}
	entries, err = kv.Scan(ctx, "reply*")
	if err != nil || len(entries) != 0 {
		t.Fatalf("Scan glob prefix: %v %v", keysOf(entries), err)
	}

	entries, err = kv.Scan(ctx, "nothing:")
	if err != nil || len(entries) != 0 {
		t.Fatalf("Scan empty: %v %v", keysOf(entries), err)
	}

	if err := kv.Delete(ctx, "response:1:a", "response:1:b", "never-existed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := kv.Delete(ctx, "response:1:a"); err != nil {
		t.Fatalf("Delete twice: %v", err)
	}
	if err := kv.Delete(ctx); err != nil {
		t.Fatalf("Delete nothing: %v", err)
	}
	entries, _ = kv.Scan(ctx, "response:")
	if keys := keysOf(entries); fmt.Sprint(keys) != "[response:10:c]" {
		t.Fatalf("after delete = %v", keys)
	}
}

// RunKVConcurrentWriters checks that parallel writers to distinct keys all land.
func RunKVConcurrentWriters(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = kv.Set(ctx, fmt.Sprintf("concurrent:%02d", i), []byte("x"))
		}(i)
	}
	wg.Wait()

	entries, err := kv.Scan(ctx, "concurrent:")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != writers {
		t.Fatalf("lost writes: got %d of %d", len(entries), writers)
	}
}

// RunReadState exercises a fresh read-state repository.
func RunReadState(t *testing.T, rs ReadState) {
	t.Helper()
	ctx := context.Background()

	ok, err := rs.Has(ctx, "alice", "n1")
	if err != nil || ok {
		t.Fatalf("Has on empty: %v %v", ok, err)
	}

	if err := rs.Add(ctx, "alice", "n1", "n2"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := rs.Add(ctx, "alice", "n1"); err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if err := rs.Add(ctx, "alice"); err != nil {
		t.Fatalf("Add nothing: %v", err)
	}
	if err := rs.Add(ctx, "bob", "n3"); err != nil {
		t.Fatalf("Add bob: %v", err)
	}

	members, err := rs.Members(ctx, "alice")
	if err != nil || fmt.Sprint(members) != "[n1 n2]" {
		t.Fatalf("Members = %v %v", members, err)
	}
	if ok, _ := rs.Has(ctx, "bob", "n1"); ok {
		t.Fatalf("read state leaked across recipients")
	}

	if err := rs.Clear(ctx, "alice"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	members, _ = rs.Members(ctx, "alice")
	if len(members) != 0 {
		t.Fatalf("after Clear = %v", members)
	}
	if ok, _ := rs.Has(ctx, "bob", "n3"); !ok {
		t.Fatalf("Clear removed another recipient's state")
	}
}

func mustSet(t *testing.T, kv storage.KV, key, value string) {
	t.Helper()
	if err := kv.Set(context.Background(), key, []byte(value)); err != nil {
		t.Fatalf("Set %s: %v", key, err)
	}
}

func keysOf(entries []storage.Entry) []string {
	out := make([]string, len(entries))
	for i, en := range entries {
		out[i] = en.Key
	}
	return out
}
