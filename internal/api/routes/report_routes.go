package routes

import (
	"github.com/gin-gonic/gin"

	"statusping/internal/api/handler"
	"statusping/pkg/middleware"
)

const ScopeReportsCreate = "reports:create"

func AddReportRoutes(r *gin.Engine, handler handler.ReportHandler, m middleware.AuthMiddleware) {
	reportRoutes := r.Group("/reports", m.ValidateAndExtractJwt())
	reportRoutes.POST("", m.CheckUserPermission(ScopeReportsCreate), handler.ReportMonitorsInformation())
}
