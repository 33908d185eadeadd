package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	redisclient "github.com/gotrabandhus/gotrabandhus/cmd/redis"
	"github.com/gotrabandhus/gotrabandhus/model"
	goredis "github.com/redis/go-redis/v9"
)

// RedisRepository caches user profiles so the completion gate and profile
// reads avoid a store round trip. Writes are write-through from the
// application layer, so a cached entry is never staler than the store.
type RedisRepository interface {
	GetUser(ctx context.Context, userID uint64) (*model.UserEntity, error)
	SetUser(ctx context.Context, user *model.UserEntity, ttl time.Duration) error
	DeleteUser(ctx context.Context, userID uint64) error
}

type redis struct{}

// NewRepository returns a Redis RedisRepository implementation. All methods
// degrade to cache misses / no-ops when no Redis client is configured.
func NewRepository() RedisRepository {
	return &redis{}
}

func userKey(userID uint64) string {
	return "user:" + strconv.FormatUint(userID, 10)
}

// GetUser returns the cached profile, or nil on a miss.
func (r *redis) GetUser(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}

	val, err := client.Get(ctx, userKey(userID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var entity model.UserEntity
	if err := json.Unmarshal([]byte(val), &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// SetUser stores the profile with a time-to-live.
func (r *redis) SetUser(ctx context.Context, user *model.UserEntity, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	body, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return client.Set(ctx, userKey(user.ID), body, ttl).Err()
}

// DeleteUser evicts a cached profile.
func (r *redis) DeleteUser(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, userKey(userID)).Err()
}
