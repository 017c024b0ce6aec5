package routes

import (
	"fleetwatch/internal/monitor/api/handler"
	"fleetwatch/pkg/middleware"
	"github.com/gin-gonic/gin"
)

const (
	ScopeMetricsExport = "metrics:export"
	ScopeReportsSend   = "reports:send"
)

func AddMonitorRoutes(r *gin.Engine, monitorHandler handler.MonitorHandler, streamHandler handler.StreamHandler, m middleware.AuthMiddleware) {
	apiRoutes := r.Group("/api")
	apiRoutes.GET("/servers", monitorHandler.GetServers())
	apiRoutes.GET("/servers/:name", monitorHandler.GetServer())
	apiRoutes.GET("/status", monitorHandler.GetStatus())
	apiRoutes.GET("/status/subscribe", streamHandler.SubscribeStatus())
	apiRoutes.GET("/metrics/samples", monitorHandler.GetSamples())
	apiRoutes.GET("/metrics/hourly", monitorHandler.GetRollups())
	apiRoutes.GET("/metrics/hourly/export", m.CheckUserPermission(ScopeMetricsExport), monitorHandler.ExportRollupsToExcelFile())
	apiRoutes.GET("/metrics/servers", monitorHandler.GetKnownServers())
	apiRoutes.POST("/reports", m.CheckUserPermission(ScopeReportsSend), monitorHandler.ReportFleetHealth())
}
