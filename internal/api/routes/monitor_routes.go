package routes

import (
	"github.com/gin-gonic/gin"

	"statusping/internal/api/handler"
	"statusping/pkg/middleware"
)

const (
	ScopeMonitorsRead   = "monitors:read"
	ScopeMonitorsCreate = "monitors:create"
	ScopeMonitorsUpdate = "monitors:update"
	ScopeMonitorsDelete = "monitors:delete"
)

func AddMonitorRoutes(r *gin.Engine, handler handler.MonitorHandler, m middleware.AuthMiddleware) {
	monitorRoutes := r.Group("/monitors", m.ValidateAndExtractJwt())
	monitorRoutes.POST("", m.CheckUserPermission(ScopeMonitorsCreate), handler.CreateMonitor())
	monitorRoutes.GET("", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitors())
	monitorRoutes.GET("/export", m.CheckUserPermission(ScopeMonitorsRead), handler.ExportMonitorsToExcelFile())
	monitorRoutes.GET("/:id", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitor())
	monitorRoutes.PATCH("/:id", m.CheckUserPermission(ScopeMonitorsUpdate), handler.UpdateMonitor())
	monitorRoutes.DELETE("/:id", m.CheckUserPermission(ScopeMonitorsDelete), handler.DeleteMonitor())
	monitorRoutes.GET("/:id/results", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitorCheckResults())
	monitorRoutes.GET("/:id/incidents", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitorIncidents())
	monitorRoutes.GET("/:id/uptime", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitorUptimePercentage())
}
