package main

import (
	"context"

	"github.com/islamdev99/GameDevTask/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/islamdev99/GameDevTask/internal/adapter/db"
	httpadapter "github.com/islamdev99/GameDevTask/internal/adapter/http"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/handlers"
	httpmiddleware "github.com/islamdev99/GameDevTask/internal/adapter/http/middleware"
	"github.com/islamdev99/GameDevTask/internal/app/service"
	"github.com/islamdev99/GameDevTask/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	store := dbadapter.NewStore(db)
	projectRepo := dbadapter.NewProjectRepository(store)
	taskRepo := dbadapter.NewTaskRepository(store)
	subtaskRepo := dbadapter.NewSubtaskRepository(store)
	blockRepo := dbadapter.NewBlockRepository(store)
	commentRepo := dbadapter.NewCommentRepository(store)
	timeLogRepo := dbadapter.NewTimeLogRepository(store)
	activityRepo := dbadapter.NewActivityRepository(store)
	syncRepo := dbadapter.NewSyncRepository(store)
	settingsRepo := dbadapter.NewSettingsRepository(store)
	userRepo := dbadapter.NewUserRepository(store)
	notificationRepo := dbadapter.NewNotificationRepository(store)

	projectService := service.NewProjectService(store, projectRepo, taskRepo, subtaskRepo, commentRepo, timeLogRepo, activityRepo, syncRepo)
	taskService := service.NewTaskService(store, projectRepo, taskRepo, subtaskRepo, commentRepo, timeLogRepo, activityRepo, syncRepo)
	subtaskService := service.NewSubtaskService(store, taskRepo, subtaskRepo, activityRepo, syncRepo)
	blockService := service.NewBlockService(store, blockRepo, activityRepo, syncRepo)
	commentService := service.NewCommentService(store, taskRepo, commentRepo, activityRepo, syncRepo)
	timeLogService := service.NewTimeLogService(store, taskRepo, timeLogRepo, activityRepo, syncRepo)
	activityService := service.NewActivityService(activityRepo)
	syncService := service.NewSyncQueueService(syncRepo, cfg.SyncRetentionDays)
	statsService := service.NewStatsService(projectRepo, taskRepo, subtaskRepo, timeLogRepo)
	settingsService := service.NewSettingsService(store, settingsRepo, activityRepo, syncRepo)
	userService := service.NewUserService(store, userRepo, activityRepo, syncRepo)
	notificationService := service.NewNotificationService(store, notificationRepo, activityRepo, syncRepo)
	backupService := service.NewBackupService(store, projectRepo, taskRepo, subtaskRepo, blockRepo, commentRepo, timeLogRepo, activityRepo, notificationRepo, userRepo, settingsRepo)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Project:      handlers.NewProjectHandler(projectService, taskService),
		Task:         handlers.NewTaskHandler(taskService),
		Subtask:      handlers.NewSubtaskHandler(subtaskService),
		Block:        handlers.NewBlockHandler(blockService),
		Comment:      handlers.NewCommentHandler(commentService),
		TimeLog:      handlers.NewTimeLogHandler(timeLogService),
		Activity:     handlers.NewActivityHandler(activityService),
		Sync:         handlers.NewSyncHandler(syncService),
		Stats:        handlers.NewStatsHandler(statsService),
		Settings:     handlers.NewSettingsHandler(settingsService),
		User:         handlers.NewUserHandler(userService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Backup:       handlers.NewBackupHandler(backupService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
