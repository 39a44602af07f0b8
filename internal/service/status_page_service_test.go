package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "statusping/internal/errors"
	mockrepository "statusping/internal/mocks/repository"
	"statusping/internal/model"
	"statusping/internal/repository"
)

func TestStatusPageService_GetStatusPage(t *testing.T) {
	ctx := context.Background()
	account := model.Account{ID: "acc-1", Name: "Acme", Slug: "acme", Plan: model.PlanPro, IsActive: true}

	t.Run("Success Page aggregates monitor history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAccountRepo := mockrepository.NewMockAccountRepository(ctrl)
		mockMonitorRepo := mockrepository.NewMockMonitorRepository(ctrl)
		mockCheckResultRepo := mockrepository.NewMockCheckResultRepository(ctrl)
		mockIncidentRepo := mockrepository.NewMockIncidentRepository(ctrl)

		lastChecked := time.Now().UTC().Add(-time.Minute)
		responseTime := int64(187)
		publicMonitor := ownedMonitor()
		publicMonitor.IsPublic = true
		publicMonitor.LastCheckedAt = &lastChecked
		day := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
		incidents := []model.Incident{{ID: "inc-1", MonitorID: "monitor-1", Title: "api is down"}}

		mockAccountRepo.EXPECT().GetAccountBySlug(ctx, "acme").Return(account, nil)
		mockMonitorRepo.EXPECT().GetPublicMonitorsByAccount(ctx, "acc-1").
			Return([]model.Monitor{publicMonitor}, nil)
		mockCheckResultRepo.EXPECT().
			GetUptimeStats(ctx, "monitor-1", gomock.Any(), gomock.Any()).
			Return(repository.UptimeStats{Total: 1440, Up: 1439}, nil)
		mockCheckResultRepo.EXPECT().
			GetDailyUptime(ctx, "monitor-1", gomock.Any()).
			Return([]repository.DailyUptime{
				{Day: day, Total: 1440, Up: 720},
				{Day: day.AddDate(0, 0, 1), Total: 0, Up: 0},
			}, nil)
		mockCheckResultRepo.EXPECT().
			GetLatestCheckResult(ctx, "monitor-1").
			Return(&model.CheckResult{ID: "result-1", MonitorID: "monitor-1", Status: model.MonitorStatusUp, ResponseTimeMs: &responseTime}, nil)
		mockIncidentRepo.EXPECT().GetIncidents(ctx, "monitor-1", 5, 0).Return(incidents, nil)

		statusPageService := NewStatusPageService(mockAccountRepo, mockMonitorRepo, mockCheckResultRepo, mockIncidentRepo)

		page, err := statusPageService.GetStatusPage(ctx, "acme")

		assert.NoError(t, err)
		assert.Equal(t, "Acme", page.AccountName)
		require.Len(t, page.Monitors, 1)
		got := page.Monitors[0]
		assert.Equal(t, "monitor-1", got.ID)
		assert.Equal(t, model.MonitorStatusUp, got.Status)
		assert.Equal(t, &lastChecked, got.LastCheckedAt)
		require.NotNil(t, got.LatestResponseTimeMs)
		assert.Equal(t, responseTime, *got.LatestResponseTimeMs)
		assert.InDelta(t, 99.93, got.Uptime24h, 0.01)
		require.Len(t, got.DailyUptime, 2)
		assert.Equal(t, 50.0, got.DailyUptime[0].UptimePercentage)
		assert.Equal(t, int64(1440), got.DailyUptime[0].TotalChecks)
		assert.Equal(t, 0.0, got.DailyUptime[1].UptimePercentage)
		assert.Equal(t, incidents, got.RecentIncidents)
	})

	t.Run("Success Account without public monitors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAccountRepo := mockrepository.NewMockAccountRepository(ctrl)
		mockMonitorRepo := mockrepository.NewMockMonitorRepository(ctrl)

		mockAccountRepo.EXPECT().GetAccountBySlug(ctx, "acme").Return(account, nil)
		mockMonitorRepo.EXPECT().GetPublicMonitorsByAccount(ctx, "acc-1").Return([]model.Monitor{}, nil)

		statusPageService := NewStatusPageService(mockAccountRepo, mockMonitorRepo, nil, nil)

		page, err := statusPageService.GetStatusPage(ctx, "acme")

		assert.NoError(t, err)
		assert.Equal(t, "Acme", page.AccountName)
		assert.NotNil(t, page.Monitors)
		assert.Empty(t, page.Monitors)
	})

	t.Run("Error Unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAccountRepo := mockrepository.NewMockAccountRepository(ctrl)

		mockAccountRepo.EXPECT().GetAccountBySlug(ctx, "ghost").
			Return(model.Account{}, apperrors.ErrAccountNotFound)

		statusPageService := NewStatusPageService(mockAccountRepo, nil, nil, nil)

		_, err := statusPageService.GetStatusPage(ctx, "ghost")

		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	})

	t.Run("Error Stats query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAccountRepo := mockrepository.NewMockAccountRepository(ctrl)
		mockMonitorRepo := mockrepository.NewMockMonitorRepository(ctrl)
		mockCheckResultRepo := mockrepository.NewMockCheckResultRepository(ctrl)

		publicMonitor := ownedMonitor()
		publicMonitor.IsPublic = true
		mockAccountRepo.EXPECT().GetAccountBySlug(ctx, "acme").Return(account, nil)
		mockMonitorRepo.EXPECT().GetPublicMonitorsByAccount(ctx, "acc-1").
			Return([]model.Monitor{publicMonitor}, nil)
		mockCheckResultRepo.EXPECT().
			GetUptimeStats(ctx, "monitor-1", gomock.Any(), gomock.Any()).
			Return(repository.UptimeStats{}, errors.New("database error"))

		statusPageService := NewStatusPageService(mockAccountRepo, mockMonitorRepo, mockCheckResultRepo, nil)

		_, err := statusPageService.GetStatusPage(ctx, "acme")

		assert.Error(t, err)
	})
}
