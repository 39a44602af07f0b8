package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"statusping/internal/api/dto/request"
	"statusping/internal/api/dto/response"
	apperrors "statusping/internal/errors"
	"statusping/internal/model"
	"statusping/internal/service"
	"statusping/pkg/middleware"
)

type MonitorHandler interface {
	CreateMonitor() gin.HandlerFunc
	GetMonitors() gin.HandlerFunc
	GetMonitor() gin.HandlerFunc
	UpdateMonitor() gin.HandlerFunc
	DeleteMonitor() gin.HandlerFunc
	GetMonitorCheckResults() gin.HandlerFunc
	GetMonitorIncidents() gin.HandlerFunc
	GetMonitorUptimePercentage() gin.HandlerFunc
	ExportMonitorsToExcelFile() gin.HandlerFunc
}

type monitorHandler struct {
	monitorService service.MonitorService
	logger         Logger
}

func (*monitorHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid url", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s]", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func accountIdFromContext(c *gin.Context) string {
	accountId, _ := c.Value(middleware.AccountIDContextKey).(string)
	return accountId
}

func monitorInfoResponse(monitor model.Monitor) response.MonitorInfoResponse {
	return response.MonitorInfoResponse{
		ID:            monitor.ID,
		Name:          monitor.Name,
		URL:           monitor.URL,
		Method:        monitor.Method,
		CheckInterval: monitor.CheckInterval,
		Timeout:       monitor.Timeout,
		IsActive:      monitor.IsActive,
		IsPublic:      monitor.IsPublic,
		CurrentStatus: monitor.CurrentStatus,
		LastCheckedAt: monitor.LastCheckedAt,
		CreatedAt:     monitor.CreatedAt,
		UpdatedAt:     monitor.UpdatedAt,
	}
}

func incidentResponse(incident model.Incident) response.IncidentResponse {
	res := response.IncidentResponse{
		ID:           incident.ID,
		Title:        incident.Title,
		FailureCount: incident.FailureCount,
		ErrorMessage: incident.ErrorMessage,
		StartedAt:    incident.StartedAt,
		ResolvedAt:   incident.ResolvedAt,
	}
	if incident.ResolvedAt != nil {
		duration := int64(incident.ResolvedAt.Sub(incident.StartedAt).Seconds())
		res.DurationSeconds = &duration
	}
	return res
}

func (h *monitorHandler) CreateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		var req request.MonitorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		newMonitor := model.Monitor{
			Name:          req.Name,
			URL:           req.URL,
			Method:        req.Method,
			CheckInterval: *req.CheckInterval,
			Timeout:       *req.Timeout,
			IsPublic:      req.IsPublic,
		}
		res, err := h.monitorService.CreateMonitor(c, accountId, newMonitor)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMonitorNameAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Monitor name already exists",
				})
			case errors.Is(err, apperrors.ErrMonitorLimitReached):
				c.JSON(http.StatusForbidden, response.Response{
					Message: "Monitor limit reached for the current plan",
				})
			case errors.Is(err, apperrors.ErrIntervalBelowPlanMinimum):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Check interval is below the plan minimum",
				})
			case errors.Is(err, apperrors.ErrAccountNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Account not found",
				})
			default:
				err = fmt.Errorf("MonitorHandler.CreateMonitor: %w", err)
				h.logger.LoggingError(c, err, "failed to create monitor", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, monitorInfoResponse(res))
	}
}

func (h *monitorHandler) GetMonitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		name := c.Query("name")
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		status := c.Query("status")
		if status != "" && status != model.MonitorStatusUnknown && status != model.MonitorStatusUp && status != model.MonitorStatusDown {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		sortBy := c.DefaultQuery("sort_by", "created_at")
		if sortBy != "name" && sortBy != "created_at" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort by",
			})
			return
		}
		sortOrder := c.DefaultQuery("sort_order", "asc")
		if sortOrder != "asc" && sortOrder != "desc" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort order",
			})
			return
		}
		monitors, err := h.monitorService.GetMonitors(c, accountId, name, status, sortBy, sortOrder, l, o)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetMonitors: %w", err)
			h.logger.LoggingError(c, err, "failed to get monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		monitorsRes := make([]response.MonitorInfoResponse, 0, len(monitors))
		for _, monitor := range monitors {
			monitorsRes = append(monitorsRes, monitorInfoResponse(monitor))
		}
		c.JSON(http.StatusOK, monitorsRes)
	}
}

func (h *monitorHandler) GetMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		id := c.Param("id")
		monitor, err := h.monitorService.GetMonitor(c, accountId, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			} else {
				err = fmt.Errorf("MonitorHandler.GetMonitor: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to get monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, monitorInfoResponse(monitor))
	}
}

func (h *monitorHandler) UpdateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		var req request.UpdateMonitorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		id := c.Param("id")
		current, err := h.monitorService.GetMonitor(c, accountId, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			} else {
				err = fmt.Errorf("MonitorHandler.UpdateMonitor: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to update monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		updatedData := current
		if req.Name != "" {
			updatedData.Name = req.Name
		}
		if req.URL != "" {
			updatedData.URL = req.URL
		}
		if req.Method != "" {
			updatedData.Method = req.Method
		}
		if req.CheckInterval != nil {
			updatedData.CheckInterval = *req.CheckInterval
		}
		if req.Timeout != nil {
			updatedData.Timeout = *req.Timeout
		}
		if req.IsActive != nil {
			updatedData.IsActive = *req.IsActive
		}
		if req.IsPublic != nil {
			updatedData.IsPublic = *req.IsPublic
		}
		updatedMonitor, err := h.monitorService.UpdateMonitor(c, accountId, updatedData)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMonitorNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			case errors.Is(err, apperrors.ErrMonitorNameAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Monitor name already exists",
				})
			case errors.Is(err, apperrors.ErrIntervalBelowPlanMinimum):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Check interval is below the plan minimum",
				})
			default:
				err = fmt.Errorf("MonitorHandler.UpdateMonitor: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to update monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, monitorInfoResponse(updatedMonitor))
	}
}

func (h *monitorHandler) DeleteMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		id := c.Param("id")
		err := h.monitorService.DeleteMonitor(c, accountId, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			} else {
				err = fmt.Errorf("MonitorHandler.DeleteMonitor: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to delete monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitor deleted",
		})
	}
}

func (h *monitorHandler) GetMonitorCheckResults() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		id := c.Param("id")
		startDate := c.Query("start_date")
		startTime, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endDate := c.Query("end_date")
		endTime, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		results, err := h.monitorService.GetCheckResults(c, accountId, id, startTime, endTimeFinal, l, o)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			} else {
				err = fmt.Errorf("MonitorHandler.GetMonitorCheckResults: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to get check results of monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		resultsRes := make([]response.CheckResultResponse, 0, len(results))
		for _, result := range results {
			resultsRes = append(resultsRes, response.CheckResultResponse{
				ID:             result.ID,
				Status:         result.Status,
				StatusCode:     result.StatusCode,
				ResponseTimeMs: result.ResponseTimeMs,
				ErrorKind:      result.ErrorKind,
				ErrorMessage:   result.ErrorMessage,
				CheckedAt:      result.CheckedAt,
			})
		}
		c.JSON(http.StatusOK, resultsRes)
	}
}

func (h *monitorHandler) GetMonitorIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		id := c.Param("id")
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		incidents, err := h.monitorService.GetIncidents(c, accountId, id, l, o)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			} else {
				err = fmt.Errorf("MonitorHandler.GetMonitorIncidents: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to get incidents of monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		incidentsRes := make([]response.IncidentResponse, 0, len(incidents))
		for _, incident := range incidents {
			incidentsRes = append(incidentsRes, incidentResponse(incident))
		}
		c.JSON(http.StatusOK, incidentsRes)
	}
}

func (h *monitorHandler) GetMonitorUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		id := c.Param("id")
		startDate := c.Query("start_date")
		startTime, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endDate := c.Query("end_date")
		endTime, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		res, err := h.monitorService.GetUptimePercentage(c, accountId, id, startTime, endTimeFinal)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			} else {
				err = fmt.Errorf("MonitorHandler.GetMonitorUptimePercentage: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of monitor %s from %s to %s", id, startTime, endTime), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func (h *monitorHandler) ExportMonitorsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		name := c.Query("name")
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		status := c.Query("status")
		if status != "" && status != model.MonitorStatusUnknown && status != model.MonitorStatusUp && status != model.MonitorStatusDown {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		sortBy := c.DefaultQuery("sort_by", "created_at")
		if sortBy != "name" && sortBy != "created_at" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort by",
			})
			return
		}
		sortOrder := c.DefaultQuery("sort_order", "desc")
		if sortOrder != "asc" && sortOrder != "desc" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort order",
			})
			return
		}
		monitors, err := h.monitorService.GetMonitors(c, accountId, name, status, sortBy, sortOrder, l, o)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		now := time.Now().UTC()
		uptimes := make(map[string]float64, len(monitors))
		for _, monitor := range monitors {
			uptime, err := h.monitorService.GetUptimePercentage(c, accountId, monitor.ID, now.Add(-24*time.Hour), now)
			if err != nil {
				err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
				h.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
				return
			}
			uptimes[monitor.ID] = uptime
		}
		file, err := h.generateExcelFile(monitors, uptimes)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("monitors-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *monitorHandler) generateExcelFile(monitors []model.Monitor, uptimes map[string]float64) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Monitors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "url", "method", "check_interval", "timeout", "is_active", "is_public", "current_status", "last_checked_at", "uptime_24h", "created_at"}
	headerStartCell := "A1"
	err = f.SetSheetRow(sheetName, headerStartCell, &headers)
	if err != nil {
		return nil, err
	}
	for i, monitor := range monitors {
		lastCheckedAt := ""
		if monitor.LastCheckedAt != nil {
			lastCheckedAt = monitor.LastCheckedAt.Format("2006-01-02 15:04:05")
		}
		rowData := []interface{}{
			monitor.ID,
			monitor.Name,
			monitor.URL,
			monitor.Method,
			monitor.CheckInterval,
			monitor.Timeout,
			strconv.FormatBool(monitor.IsActive),
			strconv.FormatBool(monitor.IsPublic),
			monitor.CurrentStatus,
			lastCheckedAt,
			fmt.Sprintf("%.2f", uptimes[monitor.ID]),
			monitor.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		err = f.SetSheetRow(sheetName, startCell, &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func NewMonitorHandler(monitorService service.MonitorService, logger Logger) MonitorHandler {
	return &monitorHandler{
		monitorService: monitorService,
		logger:         logger,
	}
}
