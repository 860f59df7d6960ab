// Package cache keeps a short-lived projection of milestone statuses in redis.
// Entries are only ever filled from confirmed state and are dropped whenever a
// transaction touching them succeeds.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crowdbridge/internal/milestone"

	"github.com/go-redis/redis/v8"
)

type MilestoneCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMilestoneCache(client *redis.Client, ttl time.Duration) *MilestoneCache {
	return &MilestoneCache{
		client: client,
		ttl:    ttl,
	}
}

func key(projectID, index uint32) string {
	return fmt.Sprintf("milestone:%d:%d", projectID, index)
}

// GetStatus returns the cached status, reporting false on a miss.
func (c *MilestoneCache) GetStatus(ctx context.Context, projectID, index uint32) (milestone.Status, bool, error) {
	val, err := c.client.Get(ctx, key(projectID, index)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cached milestone status: %w", err)
	}

	status, err := milestone.ParseStatus(val)
	if err != nil {
		// unreadable entries are treated as misses and overwritten on refill
		return "", false, nil
	}
	return status, true, nil
}

func (c *MilestoneCache) SetStatus(ctx context.Context, projectID, index uint32, status milestone.Status) error {
	if err := c.client.Set(ctx, key(projectID, index), string(status), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache milestone status: %w", err)
	}
	return nil
}

func (c *MilestoneCache) Invalidate(ctx context.Context, projectID, index uint32) error {
	if err := c.client.Del(ctx, key(projectID, index)).Err(); err != nil {
		return fmt.Errorf("invalidate milestone status: %w", err)
	}
	return nil
}
