package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.client,
		logger: r.logger,
	}
}

func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	return data, nil
}

func (c *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}

func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("Cache delete failed", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}

func (c *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		c.logger.Warn("Cache exists failed", zap.String("key", key), zap.Error(err))
		return false, errors.ErrCacheError
	}
	return n > 0, nil
}
