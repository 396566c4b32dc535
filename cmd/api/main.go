package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/deepaksx/rawabi-workshop-app/api/swagger"
	"github.com/deepaksx/rawabi-workshop-app/internal/handler"
	"github.com/deepaksx/rawabi-workshop-app/internal/middleware"
	"github.com/deepaksx/rawabi-workshop-app/internal/repository"
	"github.com/deepaksx/rawabi-workshop-app/internal/service"
	"github.com/deepaksx/rawabi-workshop-app/pkg/cache"
	"github.com/deepaksx/rawabi-workshop-app/pkg/config"
	"github.com/deepaksx/rawabi-workshop-app/pkg/database"
	"github.com/deepaksx/rawabi-workshop-app/pkg/logger"
	corsmiddleware "github.com/deepaksx/rawabi-workshop-app/pkg/middleware/cors"
	reqidmiddleware "github.com/deepaksx/rawabi-workshop-app/pkg/middleware/requestid"
	"github.com/deepaksx/rawabi-workshop-app/pkg/storage"
)

// @title Rawabi Workshop API
// @version 1.0.0
// @description Data-collection backend for due-diligence workshop sessions
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, progress cache disabled", "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.ProgressTTL, logr, cacheRepo != nil)

	sessionRepo := repository.NewSessionRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	participantRepo := repository.NewParticipantRepository(db)

	validate := validator.New()

	sessionSvc := service.NewSessionService(sessionRepo, cacheSvc, cfg.Cache.ProgressTTL, logr)
	questionSvc := service.NewQuestionService(questionRepo, answerRepo, attachmentRepo, logr)
	answerSvc := service.NewAnswerService(answerRepo, attachmentRepo, cacheSvc, logr)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, answerRepo, store, logr, service.AttachmentServiceConfig{
		MaxFileSize:   cfg.Uploads.MaxFileSizeBytes,
		AudioMIMEs:    cfg.Uploads.AudioMIMEs,
		DocumentMIMEs: cfg.Uploads.DocumentMIMEs,
	})
	participantSvc := service.NewParticipantService(participantRepo, validate, logr)

	sessionHandler := handler.NewSessionHandler(sessionSvc)
	questionHandler := handler.NewQuestionHandler(questionSvc)
	answerHandler := handler.NewAnswerHandler(answerSvc, attachmentSvc)
	participantHandler := handler.NewParticipantHandler(participantSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.MaxMultipartMemory = cfg.Uploads.MaxFileSizeBytes

	r.Static("/uploads", store.BaseDir())
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/health", metricsHandler.Health)

		api.GET("/sessions", sessionHandler.List)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.PATCH("/sessions/:id/status", sessionHandler.UpdateStatus)
		api.GET("/sessions/:id/progress", sessionHandler.Progress)
		api.GET("/sessions/:id/export", sessionHandler.Export)

		api.GET("/questions", questionHandler.List)
		api.GET("/questions/:id", questionHandler.Get)
		api.GET("/questions/session/:sessionId/by-category", questionHandler.ListByCategory)

		api.POST("/answers/question/:questionId", answerHandler.Upsert)
		api.POST("/answers/bulk-status", answerHandler.BulkStatus)
		api.GET("/answers/:answerId", answerHandler.Get)
		api.POST("/answers/:answerId/audio", answerHandler.UploadAudio)
		api.POST("/answers/:answerId/document", answerHandler.UploadDocument)
		api.DELETE("/answers/audio/:audioId", answerHandler.DeleteAudio)
		api.DELETE("/answers/document/:documentId", answerHandler.DeleteDocument)

		api.GET("/participants/session/:sessionId", participantHandler.List)
		api.POST("/participants/session/:sessionId", participantHandler.Add)
		api.POST("/participants/session/:sessionId/bulk", participantHandler.AddBulk)
		api.PATCH("/participants/:id", participantHandler.Update)
		api.PATCH("/participants/:id/presence", participantHandler.SetPresence)
		api.DELETE("/participants/:id", participantHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
