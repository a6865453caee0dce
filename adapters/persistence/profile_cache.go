package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/pkg/logger"
)

const profileViewTTL = 5 * time.Minute

type redisProfileCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisProfileCache(rdb *redis.Client, logger logger.Logger) service.ViewCache {
	return &redisProfileCache{rdb: rdb, logger: logger}
}

func profileViewKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:view:%s", userID.String())
}

func (c *redisProfileCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.rdb.Get(ctx, profileViewKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile view cache: %w", err)
	}
	return payload, nil
}

func (c *redisProfileCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	if err := c.rdb.Set(ctx, profileViewKey(userID), payload, profileViewTTL).Err(); err != nil {
		return fmt.Errorf("failed to write profile view cache: %w", err)
	}
	return nil
}

func (c *redisProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.rdb.Del(ctx, profileViewKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate profile view cache: %w", err)
	}
	return nil
}
