package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"statusping/internal/model"
)

// DailyUptime is one day's aggregate for status-page history bars.
type DailyUptime struct {
	Day   time.Time
	Total int64
	Up    int64
}

type UptimeStats struct {
	Total int64
	Up    int64
}

// FleetHealthInformation aggregates monitor counts by current status plus the
// average uptime across monitors that have results in the window.
type FleetHealthInformation struct {
	TotalMonitorsCnt        int64
	UpMonitorsCnt           int64
	DownMonitorsCnt         int64
	UnknownMonitorsCnt      int64
	InactiveMonitorsCnt     int64
	AverageUptimePercentage float64
}

type CheckResultRepository interface {
	CreateCheckResult(ctx context.Context, checkResult model.CheckResult) (model.CheckResult, error)
	GetCheckResults(ctx context.Context, monitorId string, start time.Time, end time.Time, limit int, offset int) ([]model.CheckResult, error)
	GetLatestCheckResult(ctx context.Context, monitorId string) (*model.CheckResult, error)
	CountFailuresSinceLastSuccess(ctx context.Context, monitorId string) (int, error)
	GetUptimeStats(ctx context.Context, monitorId string, start time.Time, end time.Time) (UptimeStats, error)
	GetDailyUptime(ctx context.Context, monitorId string, start time.Time) ([]DailyUptime, error)
	GetFleetHealthInformation(ctx context.Context, accountId string, start time.Time, end time.Time) (FleetHealthInformation, error)
	DeleteCheckResultsBefore(ctx context.Context, accountId string, cutoff time.Time, batchSize int) (int64, error)
}

type checkResultRepository struct {
	db *gorm.DB
}

func (c *checkResultRepository) CreateCheckResult(ctx context.Context, checkResult model.CheckResult) (model.CheckResult, error) {
	if checkResult.ID == "" {
		checkResult.ID = uuid.NewString()
	}
	result := c.db.WithContext(ctx).Create(&checkResult)
	if result.Error != nil {
		return checkResult, fmt.Errorf("CheckResultRepository.CreateCheckResult: %w", result.Error)
	}
	return checkResult, nil
}

func (c *checkResultRepository) GetCheckResults(ctx context.Context, monitorId string, start time.Time, end time.Time, limit int, offset int) ([]model.CheckResult, error) {
	var checkResults []model.CheckResult
	result := c.db.WithContext(ctx).
		Where("monitor_id = ? AND checked_at >= ? AND checked_at < ?", monitorId, start, end).
		Order("checked_at desc").Limit(limit).Offset(offset).
		Find(&checkResults)
	if result.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetCheckResults: %w", result.Error)
	}
	return checkResults, nil
}

// GetLatestCheckResult returns nil when the monitor has no stored results yet.
func (c *checkResultRepository) GetLatestCheckResult(ctx context.Context, monitorId string) (*model.CheckResult, error) {
	var checkResult model.CheckResult
	result := c.db.WithContext(ctx).Where("monitor_id = ?", monitorId).Order("checked_at desc").First(&checkResult)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("CheckResultRepository.GetLatestCheckResult: %w", result.Error)
	}
	return &checkResult, nil
}

// CountFailuresSinceLastSuccess rebuilds the consecutive-failure counter after
// a restart: every stored result newer than the most recent up result is a
// failure by definition.
func (c *checkResultRepository) CountFailuresSinceLastSuccess(ctx context.Context, monitorId string) (int, error) {
	var count int
	result := c.db.WithContext(ctx).Raw(
		`SELECT count(*) FROM check_results WHERE monitor_id = ? AND checked_at > COALESCE((SELECT MAX(checked_at) FROM check_results WHERE monitor_id = ? AND status = 'up'), 'epoch')`,
		monitorId, monitorId,
	).Scan(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("CheckResultRepository.CountFailuresSinceLastSuccess: %w", result.Error)
	}
	return count, nil
}

func (c *checkResultRepository) GetUptimeStats(ctx context.Context, monitorId string, start time.Time, end time.Time) (UptimeStats, error) {
	var stats UptimeStats
	result := c.db.WithContext(ctx).Raw(
		`SELECT count(*) AS total, count(*) FILTER (WHERE status = 'up') AS up FROM check_results WHERE monitor_id = ? AND checked_at >= ? AND checked_at < ?`,
		monitorId, start, end,
	).Scan(&stats)
	if result.Error != nil {
		return stats, fmt.Errorf("CheckResultRepository.GetUptimeStats: %w", result.Error)
	}
	return stats, nil
}

func (c *checkResultRepository) GetDailyUptime(ctx context.Context, monitorId string, start time.Time) ([]DailyUptime, error) {
	var days []DailyUptime
	result := c.db.WithContext(ctx).Raw(
		`SELECT date_trunc('day', checked_at) AS day, count(*) AS total, count(*) FILTER (WHERE status = 'up') AS up FROM check_results WHERE monitor_id = ? AND checked_at >= ? GROUP BY day ORDER BY day`,
		monitorId, start,
	).Scan(&days)
	if result.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetDailyUptime: %w", result.Error)
	}
	return days, nil
}

// GetFleetHealthInformation feeds status report mails. An empty accountId
// aggregates over every account.
func (c *checkResultRepository) GetFleetHealthInformation(ctx context.Context, accountId string, start time.Time, end time.Time) (FleetHealthInformation, error) {
	var info FleetHealthInformation

	countsQuery := `SELECT count(*) AS total_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'up') AS up_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'down') AS down_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'unknown') AS unknown_monitors_cnt, count(*) FILTER (WHERE NOT is_active) AS inactive_monitors_cnt FROM monitors`
	var countsArgs []interface{}
	uptimeFilter := ""
	if accountId != "" {
		countsQuery += ` WHERE account_id = ?`
		countsArgs = append(countsArgs, accountId)
		uptimeFilter = ` AND m.account_id = ?`
	}
	result := c.db.WithContext(ctx).Raw(countsQuery, countsArgs...).Scan(&info)
	if result.Error != nil {
		return info, fmt.Errorf("CheckResultRepository.GetFleetHealthInformation: %w", result.Error)
	}

	uptimeQuery := `SELECT COALESCE(avg(pct), 0) FROM (SELECT count(*) FILTER (WHERE cr.status = 'up') * 100.0 / count(*) AS pct FROM check_results cr JOIN monitors m ON m.id = cr.monitor_id WHERE cr.checked_at >= ? AND cr.checked_at < ?` + uptimeFilter + ` GROUP BY cr.monitor_id) per_monitor`
	uptimeArgs := []interface{}{start, end}
	if accountId != "" {
		uptimeArgs = append(uptimeArgs, accountId)
	}
	result = c.db.WithContext(ctx).Raw(uptimeQuery, uptimeArgs...).Scan(&info.AverageUptimePercentage)
	if result.Error != nil {
		return info, fmt.Errorf("CheckResultRepository.GetFleetHealthInformation: %w", result.Error)
	}
	return info, nil
}

// DeleteCheckResultsBefore removes at most batchSize rows so retention passes
// never hold long row locks; callers loop until a short batch comes back.
func (c *checkResultRepository) DeleteCheckResultsBefore(ctx context.Context, accountId string, cutoff time.Time, batchSize int) (int64, error) {
	result := c.db.WithContext(ctx).Exec(
		`DELETE FROM check_results WHERE id IN (SELECT cr.id FROM check_results cr JOIN monitors m ON m.id = cr.monitor_id WHERE m.account_id = ? AND cr.checked_at < ? LIMIT ?)`,
		accountId, cutoff, batchSize,
	)
	if result.Error != nil {
		return 0, fmt.Errorf("CheckResultRepository.DeleteCheckResultsBefore: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func NewCheckResultRepository(db *gorm.DB) CheckResultRepository {
	return &checkResultRepository{
		db: db,
	}
}
