package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"challengeHub/internal/config"
	"challengeHub/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg *config.Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: cfg.Redis.LeaderboardTTL}, nil
}

func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func leaderboardKey(challengeID int64) string {
	return fmt.Sprintf("leaderboard:challenge:%d", challengeID)
}

func (c *RedisCache) GetLeaderboard(ctx context.Context, challengeID int64) (*models.Leaderboard, bool, error) {
	data, err := c.client.Get(ctx, leaderboardKey(challengeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	var leaderboard models.Leaderboard
	if err := json.Unmarshal(data, &leaderboard); err != nil {
		return nil, false, fmt.Errorf("failed to decode leaderboard: %w", err)
	}

	return &leaderboard, true, nil
}

func (c *RedisCache) SetLeaderboard(ctx context.Context, leaderboard *models.Leaderboard) error {
	data, err := json.Marshal(leaderboard)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	if err := c.client.Set(ctx, leaderboardKey(leaderboard.ChallengeID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store leaderboard: %w", err)
	}
	return nil
}

func (c *RedisCache) InvalidateLeaderboard(ctx context.Context, challengeID int64) error {
	if err := c.client.Del(ctx, leaderboardKey(challengeID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NopCache is used when no redis address is configured. Every read is a miss.
type NopCache struct{}

func (NopCache) GetLeaderboard(context.Context, int64) (*models.Leaderboard, bool, error) {
	return nil, false, nil
}

func (NopCache) SetLeaderboard(context.Context, *models.Leaderboard) error { return nil }

func (NopCache) InvalidateLeaderboard(context.Context, int64) error { return nil }
