package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statusping/internal/api/dto/response"
	apperrors "statusping/internal/errors"
	"statusping/internal/service"
)

type StatusPageHandler interface {
	GetStatusPage() gin.HandlerFunc
}

type statusPageHandler struct {
	statusPageService service.StatusPageService
	logger            Logger
}

func (h *statusPageHandler) GetStatusPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		page, err := h.statusPageService.GetStatusPage(c, slug)
		if err != nil {
			if errors.Is(err, apperrors.ErrAccountNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Status page not found",
				})
			} else {
				err = fmt.Errorf("StatusPageHandler.GetStatusPage: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to get status page %s", slug), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		monitorsRes := make([]response.StatusPageMonitorResponse, 0, len(page.Monitors))
		for _, monitor := range page.Monitors {
			dailyRes := make([]response.DailyUptimeResponse, 0, len(monitor.DailyUptime))
			for _, day := range monitor.DailyUptime {
				dailyRes = append(dailyRes, response.DailyUptimeResponse{
					Day:              day.Day.Format("2006-01-02"),
					TotalChecks:      day.TotalChecks,
					UptimePercentage: day.UptimePercentage,
				})
			}
			incidentsRes := make([]response.IncidentResponse, 0, len(monitor.RecentIncidents))
			for _, incident := range monitor.RecentIncidents {
				incidentsRes = append(incidentsRes, incidentResponse(incident))
			}
			monitorsRes = append(monitorsRes, response.StatusPageMonitorResponse{
				ID:                   monitor.ID,
				Name:                 monitor.Name,
				Status:               monitor.Status,
				LastCheckedAt:        monitor.LastCheckedAt,
				LatestResponseTimeMs: monitor.LatestResponseTimeMs,
				Uptime24h:            monitor.Uptime24h,
				DailyUptime:          dailyRes,
				RecentIncidents:      incidentsRes,
			})
		}
		c.JSON(http.StatusOK, response.StatusPageResponse{
			AccountName: page.AccountName,
			Monitors:    monitorsRes,
		})
	}
}

func NewStatusPageHandler(statusPageService service.StatusPageService, logger Logger) StatusPageHandler {
	return &statusPageHandler{
		statusPageService: statusPageService,
		logger:            logger,
	}
}
