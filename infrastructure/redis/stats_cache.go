package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/pkg/logger"
)

const statsTTL = 60 * time.Second

// StatsCache caches per-owner task statistics. The stats windows move with
// wall-clock time, so entries carry a short TTL and every task write
// invalidates the owner's entry. A nil cache (Redis unavailable) degrades to
// computing stats on every request.
type StatsCache struct {
	client *Client
}

func NewStatsCache(client *Client) *StatsCache {
	if client == nil {
		return nil
	}
	return &StatsCache{client: client}
}

func statsKey(ownerID uuid.UUID) string {
	return "stats:" + ownerID.String()
}

func (c *StatsCache) Get(ctx context.Context, ownerID uuid.UUID) (*dto.TaskStatsResponse, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, statsKey(ownerID))
	if err != nil {
		return nil, false
	}

	var stats dto.TaskStatsResponse
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		logger.WarnContext(ctx, "Discarding malformed stats cache entry", "user_id", ownerID, "error", err)
		_ = c.client.Del(ctx, statsKey(ownerID))
		return nil, false
	}

	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, ownerID uuid.UUID, stats *dto.TaskStatsResponse) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, statsKey(ownerID), raw, statsTTL); err != nil {
		logger.WarnContext(ctx, "Failed to cache stats", "user_id", ownerID, "error", err)
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, ownerID uuid.UUID) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, statsKey(ownerID)); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate stats cache", "user_id", ownerID, "error", err)
	}
}
