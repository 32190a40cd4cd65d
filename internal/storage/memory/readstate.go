package memory

import (
	"context"
	"sort"
	"sync"
)

// ReadState keeps per-recipient sets of acknowledged notification ids.
type ReadState struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

func NewReadState() *ReadState {
	return &ReadState{sets: make(map[string]map[string]struct{})}
}

func (r *ReadState) Add(ctx context.Context, recipientID string, notificationIDs ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[recipientID]
	if !ok {
		set = make(map[string]struct{}, len(notificationIDs))
		r.sets[recipientID] = set
	}
	for _, id := range notificationIDs {
		set[id] = struct{}{}
	}
	return nil
}

func (r *ReadState) Has(ctx context.Context, recipientID, notificationID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sets[recipientID][notificationID]
	return ok, nil
}

func (r *ReadState) Members(ctx context.Context, recipientID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.sets[recipientID]))
	for id := range r.sets[recipientID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *ReadState) Clear(ctx context.Context, recipientID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, recipientID)
	return nil
}
