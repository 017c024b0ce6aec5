package main

import (
	"context"
	"errors"
	"fleetwatch/internal/monitor/api/handler"
	"fleetwatch/internal/monitor/api/routes"
	"fleetwatch/internal/monitor/broadcast"
	"fleetwatch/internal/monitor/config"
	"fleetwatch/internal/monitor/discovery"
	"fleetwatch/internal/monitor/metrics"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/internal/monitor/probe"
	"fleetwatch/internal/monitor/repository"
	"fleetwatch/internal/monitor/service"
	"fleetwatch/pkg/infra"
	"fleetwatch/pkg/logger"
	"fleetwatch/pkg/mail"
	"fleetwatch/pkg/middleware"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	k8s "k8s.io/client-go/kubernetes"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	if err = os.MkdirAll(filepath.Dir(appConfig.Server.LogFilePath), 0o755); err != nil {
		log.Fatal(fmt.Sprintf("create log directory error: %v", err))
	}
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFilePath)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "fleetwatch-monitor"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up the metrics store, schema first so every task finds it ready
	if err = os.MkdirAll(filepath.Dir(appConfig.Store.Path), 0o755); err != nil {
		zapLogger.Fatal("failed to create store directory", zap.Error(err))
	}
	db, err := infra.NewSQLiteConnection(infra.SQLiteConfig{Path: appConfig.Store.Path})
	if err != nil {
		zapLogger.Fatal("failed to open metrics store", zap.Error(err))
	} else {
		zapLogger.Info("opened metrics store successfully", zap.String("path", appConfig.Store.Path))
	}
	if err = db.AutoMigrate(&model.HealthSample{}, &model.HealthHourly{}); err != nil {
		zapLogger.Fatal("failed to migrate metrics store schema", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up the platform client. A missing client is not fatal: discovery
	// reports the platform unavailable and each broadcast cycle retries.
	var kubeClient k8s.Interface
	clientset, err := infra.NewKubernetesClient(appConfig.Discovery.Kubeconfig)
	if err != nil {
		zapLogger.Error("platform client unavailable, discovery will keep retrying", zap.Error(err))
	} else {
		kubeClient = clientset
	}

	// set up dependencies
	sampleRepo := repository.NewSampleRepository(db)
	rollupRepo := repository.NewRollupRepository(db)
	discoverer := discovery.NewPodDiscoverer(kubeClient, appConfig.Discovery.Namespace, appConfig.Discovery.LabelSelector, appConfig.Discovery.SelfPodName)
	prober := probe.NewTCPProber(appConfig.Probe.Timeout)
	hub := broadcast.NewHub(zapLogger)

	var kafkaWriter infra.KafkaWriter
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaWriter = infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
		zapLogger.Info("sample egress enabled", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.Topic))
	}

	broadcaster := service.NewSnapshotBroadcaster(zapLogger, discoverer, prober, sampleRepo, hub, kafkaWriter, appConfig.Broadcast.Interval)
	rollupService := service.NewRollupService(zapLogger, sampleRepo, rollupRepo, appConfig.Rollup.Interval, appConfig.Rollup.StartupDelay)
	retentionService := service.NewRetentionService(zapLogger, sampleRepo, rollupRepo, appConfig.Retention.Interval, appConfig.Retention.StartupDelay, appConfig.Retention.Horizon)
	monitorService := service.NewMonitorService(discoverer, broadcaster, sampleRepo, rollupRepo)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	reportService := service.NewReportService(rollupRepo, mailSender, appConfig.Mail.Recipients)
	monitorHandler := handler.NewMonitorHandler(zapLogger, monitorService, reportService)
	streamHandler := handler.NewStreamHandler(zapLogger, hub)

	m := middleware.NewAuthMiddleware()

	broadcaster.Start()
	rollupService.Start()
	retentionService.Start()

	// Create cronjob for daily report
	cronJob := cron.New()
	if appConfig.Mail.Email != "" && len(appConfig.Mail.Recipients) > 0 {
		_, err = cronJob.AddFunc(appConfig.Mail.ReportCron, func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
			zapLogger.Info("daily report cronjob called")
			e := reportService.SendDailyReport(ctx2)
			cancel2()
			if e != nil {
				zapLogger.Error("failed to generate daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
		cronJob.Start()
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddMonitorRoutes(r, monitorHandler, streamHandler, m)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			return e
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		zapLogger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		zapLogger.Error("server stopped with error", zap.Error(err))
	}

	// Stop waits for an in-flight cycle, so no task quits mid-write.
	cronJob.Stop()
	broadcaster.Stop()
	rollupService.Stop()
	retentionService.Stop()
	zapLogger.Info("server exiting")
}
