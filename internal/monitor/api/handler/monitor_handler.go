package handler

import (
	"errors"
	"fleetwatch/internal/monitor/api/dto/request"
	"fleetwatch/internal/monitor/api/dto/response"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/internal/monitor/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type MonitorHandler interface {
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	GetStatus() gin.HandlerFunc
	GetSamples() gin.HandlerFunc
	GetRollups() gin.HandlerFunc
	GetKnownServers() gin.HandlerFunc
	ExportRollupsToExcelFile() gin.HandlerFunc
	ReportFleetHealth() gin.HandlerFunc
}

type monitorHandler struct {
	logger         *zap.Logger
	monitorService service.MonitorService
	reportService  service.ReportService
}

func (*monitorHandler) formatValidationError(err validator.FieldError) string {
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

func (h *monitorHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := h.monitorService.GetServers(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetServers: %w", err)
			h.loggingError(c, err, "failed to list servers", zap.ErrorLevel)
			switch {
			case errors.Is(err, apperrors.ErrPlatformUnavailable):
				c.JSON(http.StatusServiceUnavailable, response.Response{
					Message: "Platform unavailable",
				})
			default:
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		serversRes := make([]response.ServerResponse, 0)
		for _, server := range servers {
			serversRes = append(serversRes, response.ServerResponse{
				Name:           server.Name,
				ProtocolKind:   server.ProtocolKind,
				Host:           server.Host,
				Port:           server.Port,
				LifecycleState: server.LifecycleState,
			})
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (h *monitorHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		server, err := h.monitorService.GetServer(c, name)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case errors.Is(err, apperrors.ErrPlatformUnavailable):
				err = fmt.Errorf("MonitorHandler.GetServer: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to get server %s", name), zap.ErrorLevel)
				c.JSON(http.StatusServiceUnavailable, response.Response{
					Message: "Platform unavailable",
				})
			default:
				err = fmt.Errorf("MonitorHandler.GetServer: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to get server %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.ServerResponse{
			Name:           server.Name,
			ProtocolKind:   server.ProtocolKind,
			Host:           server.Host,
			Port:           server.Port,
			LifecycleState: server.LifecycleState,
		})
	}
}

func (h *monitorHandler) GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := h.monitorService.GetStatus()
		if err != nil {
			if errors.Is(err, apperrors.ErrSnapshotNotReady) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "No status snapshot available yet",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetStatus: %w", err)
			h.loggingError(c, err, "failed to get status snapshot", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, toStatusSnapshotResponse(snapshot))
	}
}

func (h *monitorHandler) GetSamples() gin.HandlerFunc {
	return func(c *gin.Context) {
		serverName := c.Query("server")
		to := time.Now().UTC()
		if rawTo := c.Query("to"); rawTo != "" {
			parsed, err := time.Parse(time.RFC3339, rawTo)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid to time, use RFC3339 format",
				})
				return
			}
			to = parsed
		}
		from := to.Add(-24 * time.Hour)
		if rawFrom := c.Query("from"); rawFrom != "" {
			parsed, err := time.Parse(time.RFC3339, rawFrom)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid from time, use RFC3339 format",
				})
				return
			}
			from = parsed
		}
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid time range",
			})
			return
		}
		samples, err := h.monitorService.GetSamples(c, serverName, from, to)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetSamples: %w", err)
			h.loggingError(c, err, "failed to get samples", zap.ErrorLevel)
			switch {
			case errors.Is(err, apperrors.ErrStoreUnavailable):
				c.JSON(http.StatusServiceUnavailable, response.Response{
					Message: "Metrics store unavailable",
				})
			default:
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		samplesRes := make([]response.HealthSampleResponse, 0)
		for _, sample := range samples {
			samplesRes = append(samplesRes, response.HealthSampleResponse{
				ServerName:    sample.ServerName,
				Timestamp:     sample.Timestamp,
				ProtocolKind:  sample.ProtocolKind,
				IsHealthy:     sample.IsHealthy,
				LatencyMillis: sample.LatencyMillis,
			})
		}
		c.JSON(http.StatusOK, samplesRes)
	}
}

func (h *monitorHandler) GetRollups() gin.HandlerFunc {
	return func(c *gin.Context) {
		serverName := c.Query("server")
		to := time.Now().UTC()
		if rawTo := c.Query("to"); rawTo != "" {
			parsed, err := time.Parse(time.RFC3339, rawTo)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid to time, use RFC3339 format",
				})
				return
			}
			to = parsed
		}
		from := to.Add(-7 * 24 * time.Hour)
		if rawFrom := c.Query("from"); rawFrom != "" {
			parsed, err := time.Parse(time.RFC3339, rawFrom)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid from time, use RFC3339 format",
				})
				return
			}
			from = parsed
		}
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid time range",
			})
			return
		}
		rollups, err := h.monitorService.GetRollups(c, serverName, from, to)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetRollups: %w", err)
			h.loggingError(c, err, "failed to get hourly rollups", zap.ErrorLevel)
			switch {
			case errors.Is(err, apperrors.ErrStoreUnavailable):
				c.JSON(http.StatusServiceUnavailable, response.Response{
					Message: "Metrics store unavailable",
				})
			default:
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		rollupsRes := make([]response.HealthHourlyResponse, 0)
		for _, rollup := range rollups {
			rollupsRes = append(rollupsRes, response.HealthHourlyResponse{
				ServerName:       rollup.ServerName,
				HourStart:        rollup.HourStart,
				ProtocolKind:     rollup.ProtocolKind,
				SampleCount:      rollup.SampleCount,
				HealthyCount:     rollup.HealthyCount,
				AvgLatencyMillis: rollup.AvgLatencyMillis,
				MinLatencyMillis: rollup.MinLatencyMillis,
				MaxLatencyMillis: rollup.MaxLatencyMillis,
				P95LatencyMillis: rollup.P95LatencyMillis,
			})
		}
		c.JSON(http.StatusOK, rollupsRes)
	}
}

func (h *monitorHandler) GetKnownServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := h.monitorService.ListServerNames(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetKnownServers: %w", err)
			h.loggingError(c, err, "failed to list known servers", zap.ErrorLevel)
			switch {
			case errors.Is(err, apperrors.ErrStoreUnavailable):
				c.JSON(http.StatusServiceUnavailable, response.Response{
					Message: "Metrics store unavailable",
				})
			default:
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, names)
	}
}

func (h *monitorHandler) ExportRollupsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		serverName := c.Query("server")
		to := time.Now().UTC()
		if rawTo := c.Query("to"); rawTo != "" {
			parsed, err := time.Parse(time.RFC3339, rawTo)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid to time, use RFC3339 format",
				})
				return
			}
			to = parsed
		}
		from := to.Add(-7 * 24 * time.Hour)
		if rawFrom := c.Query("from"); rawFrom != "" {
			parsed, err := time.Parse(time.RFC3339, rawFrom)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid from time, use RFC3339 format",
				})
				return
			}
			from = parsed
		}
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid time range",
			})
			return
		}
		rollups, err := h.monitorService.GetRollups(c, serverName, from, to)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportRollupsToExcelFile: %w", err)
			h.loggingError(c, err, "failed to export rollups", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := h.generateExcelFile(rollups)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportRollupsToExcelFile: %w", err)
			h.loggingError(c, err, "failed to export rollups", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("health-hourly-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitorHandler.ExportRollupsToExcelFile: %w", err)
			h.loggingError(c, err, "failed to export rollups", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *monitorHandler) generateExcelFile(rollups []model.HealthHourly) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "HourlyHealth"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"server_name", "hour_start", "protocol_kind", "sample_count", "healthy_count", "avg_latency_ms", "min_latency_ms", "max_latency_ms", "p95_latency_ms"}
	err = f.SetSheetRow(sheetName, "A1", &headers)
	if err != nil {
		return nil, err
	}
	for i, rollup := range rollups {
		rowData := []interface{}{
			rollup.ServerName,
			rollup.HourStart.Format("2006-01-02 15:04:05"),
			rollup.ProtocolKind,
			rollup.SampleCount,
			rollup.HealthyCount,
			floatCell(rollup.AvgLatencyMillis),
			intCell(rollup.MinLatencyMillis),
			intCell(rollup.MaxLatencyMillis),
			floatCell(rollup.P95LatencyMillis),
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

func floatCell(value *float64) interface{} {
	if value == nil {
		return ""
	}
	return *value
}

func intCell(value *int64) interface{} {
	if value == nil {
		return ""
	}
	return *value
}

func (h *monitorHandler) ReportFleetHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
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
		err = h.reportService.SendReport(c, req.Email, startTime, endTimeFinal)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ReportFleetHealth: %w", err)
			h.loggingError(c, err, "failed to send fleet health report", zap.ErrorLevel)
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

func toStatusSnapshotResponse(snapshot *model.StatusSnapshot) response.StatusSnapshotResponse {
	serversRes := make([]response.ServerStatusResponse, 0, len(snapshot.Servers))
	for _, server := range snapshot.Servers {
		serversRes = append(serversRes, response.ServerStatusResponse{
			Name:           server.Name,
			ProtocolKind:   server.ProtocolKind,
			LifecycleState: server.LifecycleState,
			IsHealthy:      server.IsHealthy,
			LatencyMillis:  server.LatencyMillis,
			Message:        server.Message,
		})
	}
	return response.StatusSnapshotResponse{
		Servers:        serversRes,
		TakenAt:        snapshot.TakenAt,
		TotalServers:   snapshot.TotalServers,
		HealthyServers: snapshot.HealthyServers,
	}
}

func (h *monitorHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userId := c.GetHeader("X-User-Id")
	if userId != "" {
		data = append(data, zap.String("user_id", userId))
	}
	h.logger.Log(logLevel, errDescription, data...)
}

func NewMonitorHandler(logger *zap.Logger, monitorService service.MonitorService, reportService service.ReportService) MonitorHandler {
	return &monitorHandler{
		logger:         logger,
		monitorService: monitorService,
		reportService:  reportService,
	}
}
