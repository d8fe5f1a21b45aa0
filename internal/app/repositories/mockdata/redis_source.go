package mockdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// DefaultRedisKeyPrefix namespaces collection keys.
const DefaultRedisKeyPrefix = "alumnihub:collections:"

// RedisSource stores each collection as one string key.
type RedisSource struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSource creates a source over client. An empty prefix uses DefaultRedisKeyPrefix.
func NewRedisSource(client redis.UniversalClient, prefix string) *RedisSource {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisSource{client: client, prefix: prefix}
}

// Key returns the redis key holding collection.
func (r *RedisSource) Key(collection string) string {
	return r.prefix + collection
}

// Load implements Source.
func (r *RedisSource) Load(ctx context.Context, collection string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.Key(collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrCollectionAbsent
		}
		return nil, fmt.Errorf("%w: redis get %s: %v", apperrors.ErrStorage, collection, err)
	}
	return data, nil
}

// Save implements Source.
func (r *RedisSource) Save(ctx context.Context, collection string, data []byte) error {
	if err := r.client.Set(ctx, r.Key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", apperrors.ErrStorage, collection, err)
	}
	return nil
}
