// Package cache provides the Redis-backed profile cache used by the
// principal-resolution middleware. All methods are safe on a nil *Service,
// so the application degrades to database lookups when Redis is absent.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paybroker/internal/models"
)

type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{
		client: client,
		ttl:    defaultTTL,
	}
}

func profileKey(id uint) string {
	return fmt.Sprintf("profile:%d", id)
}

// CacheProfile stores the profile under its id key.
func (s *Service) CacheProfile(ctx context.Context, profile *models.Profile) error {
	if s == nil || profile == nil {
		return nil
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return s.client.Set(ctx, profileKey(profile.ID), data, s.ttl).Err()
}

// GetProfile returns the cached profile, or nil on a miss.
func (s *Service) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	if s == nil {
		return nil, nil
	}
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached profile: %w", err)
	}
	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached profile: %w", err)
	}
	return &profile, nil
}

// InvalidateProfiles drops the cache entries for the given profiles. Called
// after every balance mutation so stale balances are never served.
func (s *Service) InvalidateProfiles(ctx context.Context, ids ...uint) error {
	if s == nil || len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, profileKey(id))
	}
	return s.client.Del(ctx, keys...).Err()
}

// FlushAll flushes all keys from the cache.
func (s *Service) FlushAll(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings the Redis server.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the Redis client connection.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}
