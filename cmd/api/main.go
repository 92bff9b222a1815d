package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sjmp-dev/parish-admin-api/api/swagger"
	"github.com/sjmp-dev/parish-admin-api/internal/handler"
	"github.com/sjmp-dev/parish-admin-api/internal/middleware"
	"github.com/sjmp-dev/parish-admin-api/internal/registry"
	"github.com/sjmp-dev/parish-admin-api/internal/repository"
	"github.com/sjmp-dev/parish-admin-api/internal/service"
	"github.com/sjmp-dev/parish-admin-api/pkg/archive"
	"github.com/sjmp-dev/parish-admin-api/pkg/cache"
	"github.com/sjmp-dev/parish-admin-api/pkg/config"
	"github.com/sjmp-dev/parish-admin-api/pkg/database"
	"github.com/sjmp-dev/parish-admin-api/pkg/logger"
	corsmiddleware "github.com/sjmp-dev/parish-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sjmp-dev/parish-admin-api/pkg/middleware/requestid"
)

// @title Parish Admin API
// @version 1.0.0
// @description Back office for sacrament requests, certificates, volunteers and staff
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard caching disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	defer cacheRepo.Close()

	// Repositories.
	requestRepo := repository.NewRequestRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	parishionerRepo := repository.NewParishionerRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services.
	metricsSvc := service.NewMetricsService()
	activitySvc := service.NewActivityService(activityRepo, logr)
	authSvc := service.NewAuthService(accountRepo, activitySvc, logr, cfg.Auth)
	accountSvc := service.NewAccountService(accountRepo, activitySvc, logr)
	parishionerSvc := service.NewParishionerService(parishionerRepo, activitySvc, logr).WithCache(cacheRepo)
	dashboardSvc := service.NewDashboardService(reportRepo, parishionerSvc, activitySvc, cacheRepo, cfg.Dashboard.CacheTTL, logr).WithMetrics(metricsSvc)
	reportSvc := service.NewReportService(reportRepo, cfg.Reports, logr)
	exportSvc := service.NewExportService(reportSvc, cfg.Reports, logr)
	scheduleSvc := service.NewScheduleService(requestRepo, logr)
	historySvc := service.NewHistoryService(requestRepo, logr)

	var archiveSvc *service.ArchiveService
	if cfg.Reports.ArchiveDir != "" {
		archiveStore, err := archive.NewStore(cfg.Reports.ArchiveDir)
		if err != nil {
			logr.Sugar().Warnw("export archive unavailable", "error", err)
		} else {
			signer := archive.NewTokenSigner(cfg.Auth.JWTSecret, cfg.Reports.ArchiveTTL)
			archiveSvc = service.NewArchiveService(archiveStore, signer, logr)
			archiveSvc.Start(context.Background())
			defer archiveSvc.Stop()
			archiveSvc.Cleanup(cfg.Reports.ArchiveTTL)
		}
	}

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)
	userHandler := handler.NewUserHandler(parishionerSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	reportHandler := handler.NewReportHandler(reportSvc, exportSvc, archiveSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	historyHandler := handler.NewHistoryHandler(historySvc)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.RequireToken {
		api.Use(middleware.JWT(authSvc))
	} else {
		api.Use(middleware.OptionalJWT(authSvc))
	}

	// Auth endpoints stay open even when the guard is on.
	auth := r.Group(cfg.APIPrefix + "/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)

	// One CRUD block per registered request type; the registry is the
	// single source of routes, dashboards and workflow differences.
	for _, rt := range registry.All() {
		requestSvc := service.NewRequestService(rt, requestRepo, activitySvc, logr).WithCache(cacheRepo)
		requestHandler := handler.NewRequestHandler(requestSvc, metricsSvc)

		group := api.Group("/" + rt.Path)
		group.POST("", requestHandler.Create)
		group.GET("", requestHandler.List)
		group.GET("/:id", requestHandler.Get)
		group.PUT("/:id", requestHandler.Update)
		group.DELETE("/:id", requestHandler.Delete)
		if rt.SupportsPayment {
			group.PUT("/:id/payment", requestHandler.UpdatePayment)
		}

		api.GET("/dashboard/total-"+rt.Path, dashboardHandler.TotalByType(rt.Name))
		api.GET("/dashboard/monthly-"+rt.Path, dashboardHandler.MonthlyByType(rt.Name))
	}

	api.GET("/dashboard/total-users", dashboardHandler.TotalUsers)
	api.GET("/dashboard/monthly-users", dashboardHandler.MonthlyUsers)
	api.GET("/dashboard/recent-activity", dashboardHandler.RecentActivity)

	api.GET("/staff", accountHandler.List)
	api.GET("/staff/:id", accountHandler.Get)
	api.PUT("/staff/:id", accountHandler.Update)
	api.PUT("/staff/:id/status", accountHandler.SetStatus)
	api.DELETE("/staff/:id", accountHandler.Delete)

	api.GET("/users", userHandler.List)
	api.DELETE("/users/:id", userHandler.Delete)

	api.GET("/reports/summary", reportHandler.Summary)
	api.GET("/reports/sacrament-distribution", reportHandler.Distribution)
	api.GET("/reports/monthly-performance", reportHandler.MonthlyPerformance)
	api.GET("/reports/recent-requests", reportHandler.RecentRequests)
	api.GET("/reports/performance-metrics", reportHandler.PerformanceMetrics)
	api.GET("/reports/export", reportHandler.Export)
	api.GET("/reports/export/archive/:token", reportHandler.DownloadArchive)

	api.GET("/schedules/:type", scheduleHandler.ListByType)
	api.GET("/history", historyHandler.ByEmail)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.Int("requestTypes", len(registry.All())),
		zap.Bool("authGuard", cfg.Auth.RequireToken),
	)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
