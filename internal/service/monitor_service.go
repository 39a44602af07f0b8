package service

import (
	"context"
	"fmt"
	"time"

	apperrors "statusping/internal/errors"
	"statusping/internal/model"
	"statusping/internal/repository"
	"statusping/internal/scheduler"
)

// MonitorService is the mutation boundary for monitors. Every mutation
// reconciles the scheduler before returning, so a created monitor has a timer
// and a deleted one has none by the time the caller sees the response. All
// reads are owner-scoped: a monitor belonging to another account is reported
// as not found.
type MonitorService interface {
	CreateMonitor(ctx context.Context, accountId string, monitor model.Monitor) (model.Monitor, error)
	GetMonitor(ctx context.Context, accountId string, monitorId string) (model.Monitor, error)
	GetMonitors(ctx context.Context, accountId string, name string, status string, sortBy string, sortOrder string, limit int, offset int) ([]model.Monitor, error)
	UpdateMonitor(ctx context.Context, accountId string, updatedData model.Monitor) (model.Monitor, error)
	DeleteMonitor(ctx context.Context, accountId string, monitorId string) error
	GetCheckResults(ctx context.Context, accountId string, monitorId string, start time.Time, end time.Time, limit int, offset int) ([]model.CheckResult, error)
	GetIncidents(ctx context.Context, accountId string, monitorId string, limit int, offset int) ([]model.Incident, error)
	GetUptimePercentage(ctx context.Context, accountId string, monitorId string, start time.Time, end time.Time) (float64, error)
}

type monitorService struct {
	monitorRepo     repository.MonitorRepository
	accountRepo     repository.AccountRepository
	checkResultRepo repository.CheckResultRepository
	incidentRepo    repository.IncidentRepository
	scheduler       scheduler.Scheduler
}

func (s *monitorService) CreateMonitor(ctx context.Context, accountId string, monitor model.Monitor) (model.Monitor, error) {
	account, err := s.accountRepo.GetAccountById(ctx, accountId)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
	}
	limits := model.LimitsForPlan(account.Plan)
	if limits.MaxMonitors >= 0 {
		count, err := s.monitorRepo.CountMonitorsByAccount(ctx, accountId)
		if err != nil {
			return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
		}
		if count >= int64(limits.MaxMonitors) {
			return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", apperrors.ErrMonitorLimitReached)
		}
	}
	if monitor.CheckInterval < limits.MinCheckInterval {
		return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", apperrors.ErrIntervalBelowPlanMinimum)
	}

	monitor.AccountID = accountId
	monitor.IsActive = true
	monitor.CurrentStatus = model.MonitorStatusUnknown
	monitor.ConsecutiveFailures = 0
	created, err := s.monitorRepo.CreateMonitor(ctx, monitor)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
	}
	if err = s.scheduler.Reconcile(ctx); err != nil {
		return created, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
	}
	return created, nil
}

func (s *monitorService) GetMonitor(ctx context.Context, accountId string, monitorId string) (model.Monitor, error) {
	monitor, err := s.getOwnedMonitor(ctx, accountId, monitorId)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.GetMonitor: %w", err)
	}
	return monitor, nil
}

func (s *monitorService) GetMonitors(ctx context.Context, accountId string, name string, status string, sortBy string, sortOrder string, limit int, offset int) ([]model.Monitor, error) {
	monitors, err := s.monitorRepo.GetMonitors(ctx, accountId, name, status, sortBy, sortOrder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetMonitors: %w", err)
	}
	return monitors, nil
}

func (s *monitorService) UpdateMonitor(ctx context.Context, accountId string, updatedData model.Monitor) (model.Monitor, error) {
	if _, err := s.getOwnedMonitor(ctx, accountId, updatedData.ID); err != nil {
		return model.Monitor{}, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	account, err := s.accountRepo.GetAccountById(ctx, accountId)
	if err != nil {
		return model.Monitor{}, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	if updatedData.CheckInterval < model.LimitsForPlan(account.Plan).MinCheckInterval {
		return model.Monitor{}, fmt.Errorf("MonitorService.UpdateMonitor: %w", apperrors.ErrIntervalBelowPlanMinimum)
	}

	updated, err := s.monitorRepo.UpdateMonitor(ctx, updatedData)
	if err != nil {
		return model.Monitor{}, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	if err = s.scheduler.Reconcile(ctx); err != nil {
		return updated, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	return updated, nil
}

// DeleteMonitor stops the monitor's timer before touching the row, so no
// check outcome can be persisted once the call returns.
func (s *monitorService) DeleteMonitor(ctx context.Context, accountId string, monitorId string) error {
	if _, err := s.getOwnedMonitor(ctx, accountId, monitorId); err != nil {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", err)
	}
	s.scheduler.Remove(monitorId)
	if err := s.monitorRepo.DeleteMonitorById(ctx, monitorId); err != nil {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", err)
	}
	return nil
}

// GetCheckResults caps the window's lower bound at the plan retention horizon;
// anything older has been or is about to be pruned.
func (s *monitorService) GetCheckResults(ctx context.Context, accountId string, monitorId string, start time.Time, end time.Time, limit int, offset int) ([]model.CheckResult, error) {
	if _, err := s.getOwnedMonitor(ctx, accountId, monitorId); err != nil {
		return nil, fmt.Errorf("MonitorService.GetCheckResults: %w", err)
	}
	account, err := s.accountRepo.GetAccountById(ctx, accountId)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetCheckResults: %w", err)
	}
	floor := time.Now().UTC().Add(-model.LimitsForPlan(account.Plan).Retention)
	if start.Before(floor) {
		start = floor
	}

	results, err := s.checkResultRepo.GetCheckResults(ctx, monitorId, start, end, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetCheckResults: %w", err)
	}
	return results, nil
}

func (s *monitorService) GetIncidents(ctx context.Context, accountId string, monitorId string, limit int, offset int) ([]model.Incident, error) {
	if _, err := s.getOwnedMonitor(ctx, accountId, monitorId); err != nil {
		return nil, fmt.Errorf("MonitorService.GetIncidents: %w", err)
	}
	incidents, err := s.incidentRepo.GetIncidents(ctx, monitorId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetIncidents: %w", err)
	}
	return incidents, nil
}

// GetUptimePercentage returns 0 for a window with no outcomes; an empty
// window is not an error.
func (s *monitorService) GetUptimePercentage(ctx context.Context, accountId string, monitorId string, start time.Time, end time.Time) (float64, error) {
	if _, err := s.getOwnedMonitor(ctx, accountId, monitorId); err != nil {
		return 0, fmt.Errorf("MonitorService.GetUptimePercentage: %w", err)
	}
	stats, err := s.checkResultRepo.GetUptimeStats(ctx, monitorId, start, end)
	if err != nil {
		return 0, fmt.Errorf("MonitorService.GetUptimePercentage: %w", err)
	}
	if stats.Total == 0 {
		return 0, nil
	}
	return float64(stats.Up) / float64(stats.Total) * 100, nil
}

func (s *monitorService) getOwnedMonitor(ctx context.Context, accountId string, monitorId string) (model.Monitor, error) {
	monitor, err := s.monitorRepo.GetMonitorById(ctx, monitorId)
	if err != nil {
		return monitor, err
	}
	if monitor.AccountID != accountId {
		return model.Monitor{}, apperrors.ErrMonitorNotFound
	}
	return monitor, nil
}

func NewMonitorService(monitorRepo repository.MonitorRepository, accountRepo repository.AccountRepository, checkResultRepo repository.CheckResultRepository, incidentRepo repository.IncidentRepository, checkScheduler scheduler.Scheduler) MonitorService {
	return &monitorService{
		monitorRepo:     monitorRepo,
		accountRepo:     accountRepo,
		checkResultRepo: checkResultRepo,
		incidentRepo:    incidentRepo,
		scheduler:       checkScheduler,
	}
}
