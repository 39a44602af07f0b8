package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	apperrors "statusping/internal/errors"
	mockhandler "statusping/internal/mocks/handler"
	mockservice "statusping/internal/mocks/service"
	"statusping/internal/model"
	"statusping/internal/service"
)

func TestStatusPageHandler_GetStatusPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	slug := "acme"

	lastChecked := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	responseTime := int64(187)
	startedAt := time.Date(2026, 8, 20, 4, 0, 0, 0, time.UTC)
	resolvedAt := startedAt.Add(15 * time.Minute)
	page := service.StatusPage{
		AccountName: "Acme",
		Monitors: []service.StatusPageMonitor{
			{
				ID:                   "monitor-1",
				Name:                 "api",
				Status:               model.MonitorStatusUp,
				LastCheckedAt:        &lastChecked,
				LatestResponseTimeMs: &responseTime,
				Uptime24h:            99.93,
				DailyUptime: []service.DailyUptimeEntry{
					{Day: time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), TotalChecks: 1440, UptimePercentage: 99.93},
					{Day: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), TotalChecks: 600, UptimePercentage: 100},
				},
				RecentIncidents: []model.Incident{
					{
						ID:           "inc-1",
						MonitorID:    "monitor-1",
						Title:        "api is down",
						FailureCount: 3,
						StartedAt:    startedAt,
						ResolvedAt:   &resolvedAt,
					},
				},
			},
		},
	}

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockStatusPageService, mockLogger *mockhandler.MockLogger)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Success Get Status Page",
			setupMocks: func(mockService *mockservice.MockStatusPageService, mockLogger *mockhandler.MockLogger) {
				mockService.EXPECT().GetStatusPage(gomock.Any(), slug).Return(page, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				`"account_name":"Acme"`,
				`"id":"monitor-1"`,
				`"uptime_24h":99.93`,
				`"day":"2026-08-22"`,
				`"total_checks":1440`,
				`"latest_response_time_ms":187`,
				`"duration_seconds":900`,
			},
		},
		{
			name: "Success Account Without Public Monitors",
			setupMocks: func(mockService *mockservice.MockStatusPageService, mockLogger *mockhandler.MockLogger) {
				mockService.EXPECT().GetStatusPage(gomock.Any(), slug).
					Return(service.StatusPage{AccountName: "Acme", Monitors: []service.StatusPageMonitor{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"monitors":[]`},
		},
		{
			name: "Error Status Page Not Found",
			setupMocks: func(mockService *mockservice.MockStatusPageService, mockLogger *mockhandler.MockLogger) {
				mockService.EXPECT().GetStatusPage(gomock.Any(), slug).
					Return(service.StatusPage{}, apperrors.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{`"message":"Status page not found"`},
		},
		{
			name: "Error Internal Server Error",
			setupMocks: func(mockService *mockservice.MockStatusPageService, mockLogger *mockhandler.MockLogger) {
				mockService.EXPECT().GetStatusPage(gomock.Any(), slug).
					Return(service.StatusPage{}, errors.New("db error"))
				mockLogger.EXPECT().LoggingError(gomock.Any(), gomock.Any(), "failed to get status page acme", zapcore.ErrorLevel)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"message":"Internal server error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockStatusPageService(ctrl)
			mockLogger := mockhandler.NewMockLogger(ctrl)
			tc.setupMocks(mockService, mockLogger)

			handler := NewStatusPageHandler(mockService, mockLogger)

			w, c := setupTestContext(t, http.MethodGet, "/status/"+slug, nil)
			c.Params = gin.Params{gin.Param{Key: "slug", Value: slug}}

			handler.GetStatusPage()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, expected := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), expected)
			}
		})
	}
}
