package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"statusping/internal/model"
)

// cachedMonitorRepository fronts monitor reads with redis so the scheduler's
// per-fire configuration re-read does not hammer postgres. Configuration
// writes invalidate the key; check-state bookkeeping does not, because the
// cache only feeds the scheduler and the scheduler ignores those columns.
type cachedMonitorRepository struct {
	redis    *redis.Client
	repo     MonitorRepository
	cacheTTL time.Duration
}

func (*cachedMonitorRepository) monitorCacheKey(id string) string {
	return fmt.Sprintf("monitor:%s", id)
}

func (c *cachedMonitorRepository) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	return c.repo.CreateMonitor(ctx, monitor)
}

func (c *cachedMonitorRepository) GetMonitorById(ctx context.Context, monitorId string) (model.Monitor, error) {
	data, err := c.redis.Get(ctx, c.monitorCacheKey(monitorId)).Bytes()
	if err == nil {
		var monitor model.Monitor
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&monitor); e == nil {
			return monitor, nil
		}
	} else if err != redis.Nil {
		return model.Monitor{}, fmt.Errorf("cachedMonitorRepository.GetMonitorById: %w", err)
	}

	monitor, err := c.repo.GetMonitorById(ctx, monitorId)
	if err != nil {
		return model.Monitor{}, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(monitor); e == nil {
		c.redis.Set(ctx, c.monitorCacheKey(monitorId), buf.Bytes(), c.cacheTTL)
	}
	return monitor, nil
}

func (c *cachedMonitorRepository) GetMonitors(ctx context.Context, accountId string, name string, status string, sortBy string, sortOrder string, limit int, offset int) ([]model.Monitor, error) {
	return c.repo.GetMonitors(ctx, accountId, name, status, sortBy, sortOrder, limit, offset)
}

func (c *cachedMonitorRepository) GetActiveMonitors(ctx context.Context) ([]model.Monitor, error) {
	return c.repo.GetActiveMonitors(ctx)
}

func (c *cachedMonitorRepository) GetPublicMonitorsByAccount(ctx context.Context, accountId string) ([]model.Monitor, error) {
	return c.repo.GetPublicMonitorsByAccount(ctx, accountId)
}

func (c *cachedMonitorRepository) CountMonitorsByAccount(ctx context.Context, accountId string) (int64, error) {
	return c.repo.CountMonitorsByAccount(ctx, accountId)
}

func (c *cachedMonitorRepository) UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error) {
	if err := c.redis.Del(ctx, c.monitorCacheKey(updatedData.ID)).Err(); err != nil {
		return model.Monitor{}, fmt.Errorf("cachedMonitorRepository.UpdateMonitor: %w", err)
	}
	return c.repo.UpdateMonitor(ctx, updatedData)
}

func (c *cachedMonitorRepository) UpdateMonitorCheckState(ctx context.Context, monitorId string, status string, consecutiveFailures int, lastCheckedAt time.Time) error {
	return c.repo.UpdateMonitorCheckState(ctx, monitorId, status, consecutiveFailures, lastCheckedAt)
}

func (c *cachedMonitorRepository) DeleteMonitorById(ctx context.Context, monitorId string) error {
	if err := c.redis.Del(ctx, c.monitorCacheKey(monitorId)).Err(); err != nil {
		return fmt.Errorf("cachedMonitorRepository.DeleteMonitorById: %w", err)
	}
	return c.repo.DeleteMonitorById(ctx, monitorId)
}

func NewCachedMonitorRepository(redisClient *redis.Client, repo MonitorRepository, cacheTTL time.Duration) MonitorRepository {
	return &cachedMonitorRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
