package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"statusping/internal/api/dto/request"
	"statusping/internal/api/dto/response"
	"statusping/internal/service"
)

type ReportHandler interface {
	ReportMonitorsInformation() gin.HandlerFunc
}

type reportHandler struct {
	reportService service.ReportService
	logger        Logger
}

func (*reportHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *reportHandler) ReportMonitorsInformation() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId := accountIdFromContext(c)
		if accountId == "" {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Invalid access token",
			})
			return
		}
		var req request.ReportRequest
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
		startTime, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", req.EndDate)
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
		err = h.reportService.ReportMonitorsInformation(c, accountId, startTime, endTimeFinal, req.Email)
		if err != nil {
			err = fmt.Errorf("ReportHandler.ReportMonitorsInformation: %w", err)
			h.logger.LoggingError(c, err, "failed to report monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewReportHandler(reportService service.ReportService, logger Logger) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		logger:        logger,
	}
}
