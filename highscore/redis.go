package highscore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps scores in a single Redis list.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Append(ctx context.Context, score int) error {
	if err := r.client.RPush(ctx, r.key, score).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Scores(ctx context.Context) ([]int, error) {
	values, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", r.key, err)
	}
	scores := make([]int, 0, len(values))
	for i, v := range values {
		score, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %q", ErrMalformed, r.key, i, v)
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
