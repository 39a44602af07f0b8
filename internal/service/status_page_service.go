package service

import (
	"context"
	"fmt"
	"time"

	"statusping/internal/model"
	"statusping/internal/repository"
)

// StatusPage is the public view of an account's monitors, addressed by the
// account slug. Only monitors marked public appear on it.
type StatusPage struct {
	AccountName string
	Monitors    []StatusPageMonitor
}

type StatusPageMonitor struct {
	ID                   string
	Name                 string
	Status               string
	LastCheckedAt        *time.Time
	LatestResponseTimeMs *int64
	Uptime24h            float64
	DailyUptime          []DailyUptimeEntry
	RecentIncidents      []model.Incident
}

// DailyUptimeEntry is one bar of the 90-day uptime history.
type DailyUptimeEntry struct {
	Day              time.Time
	TotalChecks      int64
	UptimePercentage float64
}

type StatusPageService interface {
	GetStatusPage(ctx context.Context, slug string) (StatusPage, error)
}

type statusPageService struct {
	accountRepo     repository.AccountRepository
	monitorRepo     repository.MonitorRepository
	checkResultRepo repository.CheckResultRepository
	incidentRepo    repository.IncidentRepository
}

func (s *statusPageService) GetStatusPage(ctx context.Context, slug string) (StatusPage, error) {
	account, err := s.accountRepo.GetAccountBySlug(ctx, slug)
	if err != nil {
		return StatusPage{}, fmt.Errorf("StatusPageService.GetStatusPage: %w", err)
	}
	monitors, err := s.monitorRepo.GetPublicMonitorsByAccount(ctx, account.ID)
	if err != nil {
		return StatusPage{}, fmt.Errorf("StatusPageService.GetStatusPage: %w", err)
	}

	now := time.Now().UTC()
	historyStart := now.AddDate(0, 0, -90)
	page := StatusPage{
		AccountName: account.Name,
		Monitors:    make([]StatusPageMonitor, 0, len(monitors)),
	}
	for _, monitor := range monitors {
		stats, err := s.checkResultRepo.GetUptimeStats(ctx, monitor.ID, now.Add(-24*time.Hour), now)
		if err != nil {
			return StatusPage{}, fmt.Errorf("StatusPageService.GetStatusPage: %w", err)
		}
		daily, err := s.checkResultRepo.GetDailyUptime(ctx, monitor.ID, historyStart)
		if err != nil {
			return StatusPage{}, fmt.Errorf("StatusPageService.GetStatusPage: %w", err)
		}
		latest, err := s.checkResultRepo.GetLatestCheckResult(ctx, monitor.ID)
		if err != nil {
			return StatusPage{}, fmt.Errorf("StatusPageService.GetStatusPage: %w", err)
		}
		incidents, err := s.incidentRepo.GetIncidents(ctx, monitor.ID, 5, 0)
		if err != nil {
			return StatusPage{}, fmt.Errorf("StatusPageService.GetStatusPage: %w", err)
		}

		pageMonitor := StatusPageMonitor{
			ID:              monitor.ID,
			Name:            monitor.Name,
			Status:          monitor.CurrentStatus,
			LastCheckedAt:   monitor.LastCheckedAt,
			Uptime24h:       uptimePercentage(stats),
			DailyUptime:     make([]DailyUptimeEntry, 0, len(daily)),
			RecentIncidents: incidents,
		}
		if latest != nil {
			pageMonitor.LatestResponseTimeMs = latest.ResponseTimeMs
		}
		for _, day := range daily {
			pageMonitor.DailyUptime = append(pageMonitor.DailyUptime, DailyUptimeEntry{
				Day:              day.Day,
				TotalChecks:      day.Total,
				UptimePercentage: uptimePercentage(repository.UptimeStats{Total: day.Total, Up: day.Up}),
			})
		}
		page.Monitors = append(page.Monitors, pageMonitor)
	}
	return page, nil
}

func uptimePercentage(stats repository.UptimeStats) float64 {
	if stats.Total == 0 {
		return 0
	}
	return float64(stats.Up) / float64(stats.Total) * 100
}

func NewStatusPageService(accountRepo repository.AccountRepository, monitorRepo repository.MonitorRepository, checkResultRepo repository.CheckResultRepository, incidentRepo repository.IncidentRepository) StatusPageService {
	return &statusPageService{
		accountRepo:     accountRepo,
		monitorRepo:     monitorRepo,
		checkResultRepo: checkResultRepo,
		incidentRepo:    incidentRepo,
	}
}
