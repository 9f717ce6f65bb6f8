// Package redis provides the Redis-backed session cache holding the
// transient per-user recommendation lists between chat turns.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/domain/recommendation"
	"github.com/vitabox/v1/internal/infrastructure/config"
	"github.com/vitabox/v1/internal/ports/outbound"
)

// NewClient creates a Redis client from configuration.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
}

// SessionCache implements the session cache interface on Redis.
type SessionCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionCache creates a session cache
func NewSessionCache(client *redis.Client, logger *zap.Logger) outbound.SessionCache {
	return &SessionCache{
		client: client,
		logger: logger.Named("session-cache"),
	}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:recommendations:%s", userID)
}

// SetRecommendations stores the user's current recommendation list.
func (c *SessionCache) SetRecommendations(ctx context.Context, userID uuid.UUID, recs []recommendation.Recommendation, ttl time.Duration) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, sessionKey(userID), data, ttl).Err(); err != nil {
		c.logger.Error("Session set failed", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

// GetRecommendations loads the user's current recommendation list.
func (c *SessionCache) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	data, err := c.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("Session get failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, err
	}

	var recs []recommendation.Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteRecommendations drops the user's session list.
func (c *SessionCache) DeleteRecommendations(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, sessionKey(userID)).Err()
}
