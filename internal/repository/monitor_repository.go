package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "statusping/internal/errors"
	"statusping/internal/model"
)

type MonitorRepository interface {
	CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	GetMonitorById(ctx context.Context, monitorId string) (model.Monitor, error)
	GetMonitors(ctx context.Context, accountId string, name string, status string, sortBy string, sortOrder string, limit int, offset int) ([]model.Monitor, error)
	GetActiveMonitors(ctx context.Context) ([]model.Monitor, error)
	GetPublicMonitorsByAccount(ctx context.Context, accountId string) ([]model.Monitor, error)
	CountMonitorsByAccount(ctx context.Context, accountId string) (int64, error)
	UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error)
	UpdateMonitorCheckState(ctx context.Context, monitorId string, status string, consecutiveFailures int, lastCheckedAt time.Time) error
	DeleteMonitorById(ctx context.Context, monitorId string) error
}

type monitorRepository struct {
	db *gorm.DB
}

func (m *monitorRepository) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	if monitor.ID == "" {
		monitor.ID = uuid.NewString()
	}
	result := m.db.WithContext(ctx).Create(&monitor)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "idx_monitors_account_name" {
				return monitor, fmt.Errorf("MonitorRepository.CreateMonitor: %w", apperrors.ErrMonitorNameAlreadyExists)
			}
		}
		return monitor, fmt.Errorf("MonitorRepository.CreateMonitor: %w", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) GetMonitorById(ctx context.Context, monitorId string) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).First(&monitor, "id = ?", monitorId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return monitor, fmt.Errorf("MonitorRepository.GetMonitorById: %w", apperrors.ErrMonitorNotFound)
		}
		return monitor, fmt.Errorf("MonitorRepository.GetMonitorById: %w", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) GetMonitors(ctx context.Context, accountId string, name string, status string, sortBy string, sortOrder string, limit int, offset int) ([]model.Monitor, error) {
	query := m.db.WithContext(ctx).Where("account_id = ?", accountId)
	if name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}
	if status != "" {
		query = query.Where("current_status = ?", status)
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Limit(limit).Offset(offset)
	var monitors []model.Monitor
	result := query.Find(&monitors)
	if result.Error != nil {
		return nil, fmt.Errorf("MonitorRepository.GetMonitors: %w", result.Error)
	}
	return monitors, nil
}

func (m *monitorRepository) GetActiveMonitors(ctx context.Context) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := m.db.WithContext(ctx).Where("is_active = ?", true).Find(&monitors)
	if result.Error != nil {
		return nil, fmt.Errorf("MonitorRepository.GetActiveMonitors: %w", result.Error)
	}
	return monitors, nil
}

func (m *monitorRepository) GetPublicMonitorsByAccount(ctx context.Context, accountId string) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := m.db.WithContext(ctx).Where("account_id = ? AND is_public = ?", accountId, true).Order("name asc").Find(&monitors)
	if result.Error != nil {
		return nil, fmt.Errorf("MonitorRepository.GetPublicMonitorsByAccount: %w", result.Error)
	}
	return monitors, nil
}

func (m *monitorRepository) CountMonitorsByAccount(ctx context.Context, accountId string) (int64, error) {
	var count int64
	result := m.db.WithContext(ctx).Model(&model.Monitor{}).Where("account_id = ?", accountId).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("MonitorRepository.CountMonitorsByAccount: %w", result.Error)
	}
	return count, nil
}

// UpdateMonitor writes configuration columns only; check-state bookkeeping
// goes through UpdateMonitorCheckState. A map is used so false booleans are
// still written.
func (m *monitorRepository) UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).Model(&monitor).Clauses(clause.Returning{}).Where("id = ?", updatedData.ID).Updates(map[string]interface{}{
		"name":           updatedData.Name,
		"url":            updatedData.URL,
		"method":         updatedData.Method,
		"check_interval": updatedData.CheckInterval,
		"timeout":        updatedData.Timeout,
		"is_active":      updatedData.IsActive,
		"is_public":      updatedData.IsPublic,
	})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "idx_monitors_account_name" {
				return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", apperrors.ErrMonitorNameAlreadyExists)
			}
		}
		return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	return monitor, nil
}

func (m *monitorRepository) UpdateMonitorCheckState(ctx context.Context, monitorId string, status string, consecutiveFailures int, lastCheckedAt time.Time) error {
	result := m.db.WithContext(ctx).Model(&model.Monitor{}).Where("id = ?", monitorId).Updates(map[string]interface{}{
		"current_status":       status,
		"consecutive_failures": consecutiveFailures,
		"last_checked_at":      lastCheckedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("MonitorRepository.UpdateMonitorCheckState: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MonitorRepository.UpdateMonitorCheckState: %w", apperrors.ErrMonitorNotFound)
	}
	return nil
}

func (m *monitorRepository) DeleteMonitorById(ctx context.Context, monitorId string) error {
	result := m.db.WithContext(ctx).Where("id = ?", monitorId).Delete(&model.Monitor{})
	if result.Error != nil {
		return fmt.Errorf("MonitorRepository.DeleteMonitorById: %w", result.Error)
	}
	return nil
}

func NewMonitorRepository(db *gorm.DB) MonitorRepository {
	return &monitorRepository{
		db: db,
	}
}
