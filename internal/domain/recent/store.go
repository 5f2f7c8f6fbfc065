package recent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// MaxEntries is how many gym ids are kept per user.
	MaxEntries = 10
	// ShowLimit is how many recent gyms the API returns.
	ShowLimit = 6
)

func key(userID int64) string {
	return fmt.Sprintf("recent:user:%d", userID)
}

// RedisStore keeps each user's recently viewed gym ids as a Redis list, newest first.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Track moves gymID to the front of the user's list.
func (s *RedisStore) Track(ctx context.Context, userID, gymID int64) error {
	k := key(userID)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LRem(ctx, k, 0, gymID)
		p.LPush(ctx, k, gymID)
		p.LTrim(ctx, k, 0, MaxEntries-1)
		p.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("track recent view: %w", err)
	}
	return nil
}

func (s *RedisStore) IDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	raw, err := s.client.LRange(ctx, key(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read recent views: %w", err)
	}
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Merge puts the client's ids (most recent first) ahead of the stored ones.
func (s *RedisStore) Merge(ctx context.Context, userID int64, ids []int64) error {
	stored, err := s.IDs(ctx, userID, MaxEntries)
	if err != nil {
		return err
	}
	merged := mergeIDs(ids, stored, MaxEntries)
	if len(merged) == 0 {
		return nil
	}

	values := make([]any, len(merged))
	for i, id := range merged {
		values[i] = id
	}

	k := key(userID)
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, k)
		p.RPush(ctx, k, values...)
		p.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("merge recent views: %w", err)
	}
	return nil
}

func mergeIDs(front, back []int64, limit int) []int64 {
	seen := make(map[int64]bool, len(front)+len(back))
	out := make([]int64, 0, limit)
	for _, list := range [][]int64{front, back} {
		for _, id := range list {
			if id <= 0 || seen[id] {
				continue
			}
			if len(out) == limit {
				return out
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
