package handoff

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisMailbox keeps slots in redis. Take relies on GETDEL so a pending record
// is handed to exactly one reader.
type RedisMailbox struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMailbox builds a mailbox; a zero ttl keeps records until they are read.
func NewRedisMailbox(client *redis.Client, ttl time.Duration) *RedisMailbox {
	return &RedisMailbox{client: client, ttl: ttl}
}

func (m *RedisMailbox) Put(ctx context.Context, key string, payload []byte) error {
	return m.client.Set(ctx, key, payload, m.ttl).Err()
}

func (m *RedisMailbox) Take(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := m.client.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}
