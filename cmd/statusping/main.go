package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"statusping/internal/api/handler"
	"statusping/internal/api/routes"
	"statusping/internal/config"
	"statusping/internal/detector"
	"statusping/internal/dispatcher"
	"statusping/internal/model"
	"statusping/internal/prober"
	"statusping/internal/pruner"
	"statusping/internal/repository"
	"statusping/internal/scheduler"
	"statusping/internal/service"
	"statusping/pkg/infra"
	"statusping/pkg/logger"
	"statusping/pkg/mail"
	"statusping/pkg/middleware"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/statusping.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("create log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "statusping"))
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

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	err = db.AutoMigrate(&model.Account{}, &model.Monitor{}, &model.CheckResult{}, &model.Incident{}, &model.AlertDelivery{})
	if err != nil {
		zapLogger.Fatal("failed to migrate database schema", zap.Error(err))
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up dependencies
	accountRepo := repository.NewAccountRepository(db)
	monitorRepo := repository.NewCachedMonitorRepository(redisClient, repository.NewMonitorRepository(db), appConfig.Redis.CacheTTL)
	checkResultRepo := repository.NewCheckResultRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	deliveryRepo := repository.NewAlertDeliveryRepository(db)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)

	channels := []dispatcher.Channel{
		dispatcher.NewEmailChannel(mailSender),
		dispatcher.NewWebhookChannel(appConfig.Dispatcher.WebhookTimeout),
	}
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.AlertTopic)
		defer kafkaWriter.Close()
		channels = append(channels, dispatcher.NewStreamChannel(kafkaWriter))
		zapLogger.Info("kafka alert stream enabled", zap.String("topic", appConfig.Kafka.AlertTopic))
	}
	alertDispatcher := dispatcher.NewDispatcher(accountRepo, deliveryRepo, channels, appConfig.Dispatcher, zapLogger)
	alertDispatcher.Start()

	stateDetector := detector.NewDetector(monitorRepo, checkResultRepo, incidentRepo, appConfig.Scheduler.FailureThreshold, zapLogger)
	checkScheduler := scheduler.NewScheduler(monitorRepo, accountRepo, checkResultRepo, prober.NewHTTPProber(), stateDetector, alertDispatcher, appConfig.Scheduler, zapLogger)
	if err = checkScheduler.Start(context.Background()); err != nil {
		zapLogger.Fatal("failed to start scheduler", zap.Error(err))
	}

	monitorService := service.NewMonitorService(monitorRepo, accountRepo, checkResultRepo, incidentRepo, checkScheduler)
	accountService := service.NewAccountService(accountRepo, checkScheduler)
	reportService := service.NewReportService(checkResultRepo, mailSender)
	statusPageService := service.NewStatusPageService(accountRepo, monitorRepo, checkResultRepo, incidentRepo)

	// Create cronjobs for retention pruning and the daily report
	resultPruner := pruner.NewPruner(accountRepo, checkResultRepo, appConfig.Pruner, zapLogger)
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Pruner.Schedule, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Minute)
		if e := resultPruner.Prune(ctx2); e != nil {
			zapLogger.Error("failed to prune check results", zap.Error(e))
		}
		cancel2()
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for retention pruning", zap.Error(err))
	}
	_, err = cronJob.AddFunc("0 0 * * *", func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		zapLogger.Info("cronjob called")
		e := reportService.ReportMonitorsInformation(ctx2, "", time.Now().Add(-time.Hour*24), time.Now(), appConfig.Mail.AdminMailAddress)
		cancel2()
		if e != nil {
			zapLogger.Error("failed to generate daily report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	handlerLogger := handler.NewLogger(zapLogger)
	m := middleware.NewAuthMiddleware(appConfig.Server.JWTSecret)
	routes.AddMonitorRoutes(r, handler.NewMonitorHandler(monitorService, handlerLogger), m)
	routes.AddAccountRoutes(r, handler.NewAccountHandler(accountService, handlerLogger), m)
	routes.AddReportRoutes(r, handler.NewReportHandler(reportService, handlerLogger), m)
	routes.AddStatusPageRoutes(r, handler.NewStatusPageHandler(statusPageService, handlerLogger))
	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	cronJob.Stop()
	checkScheduler.Stop()
	alertDispatcher.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
