package redis

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"

	"geoalert/pkg/e"
)

// ReadState keeps one Redis set per recipient. SADD makes concurrent
// acknowledgements from several devices safe without a lock.
type ReadState struct {
	client *redis.Client
	prefix string
}

func NewReadState(client *redis.Client, prefix string) *ReadState {
	return &ReadState{client: client, prefix: prefix}
}

func (r *ReadState) key(recipientID string) string {
	return r.prefix + recipientID
}

func (r *ReadState) Add(ctx context.Context, recipientID string, notificationIDs ...string) error {
	if len(notificationIDs) == 0 {
		return nil
	}
	members := make([]interface{}, len(notificationIDs))
	for i, id := range notificationIDs {
		members[i] = id
	}
	if err := r.client.SAdd(ctx, r.key(recipientID), members...).Err(); err != nil {
		return e.WrapError(ctx, "redis.ReadState.Add", err)
	}
	return nil
}

func (r *ReadState) Has(ctx context.Context, recipientID, notificationID string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key(recipientID), notificationID).Result()
	if err != nil {
		return false, e.WrapError(ctx, "redis.ReadState.Has", err)
	}
	return ok, nil
}

func (r *ReadState) Members(ctx context.Context, recipientID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.key(recipientID)).Result()
	if err != nil {
		return nil, e.WrapError(ctx, "redis.ReadState.Members", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *ReadState) Clear(ctx context.Context, recipientID string) error {
	if err := r.client.Del(ctx, r.key(recipientID)).Err(); err != nil {
		return e.WrapError(ctx, "redis.ReadState.Clear", err)
	}
	return nil
}
