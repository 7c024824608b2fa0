package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-ideas/internal/ideas/config"
	delivery "golang-stock-ideas/internal/ideas/delivery/http"
	_ "golang-stock-ideas/internal/ideas/docs"
	"golang-stock-ideas/internal/ideas/repository"
	"golang-stock-ideas/internal/ideas/service"
	"golang-stock-ideas/pkg/filestorage"
	"golang-stock-ideas/pkg/firestore"
	"golang-stock-ideas/pkg/idgen"
	"golang-stock-ideas/pkg/logger"
	"golang-stock-ideas/pkg/postgres"
	"golang-stock-ideas/pkg/redis"
	"golang-stock-ideas/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock ideas service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Stock Ideas Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("store", cfg.Ideas.Store),
		logger.StringField("mirror", cfg.Mirror.Backend))

	// Initialize repositories
	ideaRepo, baselineRepo, cleanup := buildRepositories(cfg, appLogger)
	defer cleanup()

	// Initialize collaborators
	notifier := service.NewNopNotifier()
	if cfg.Telegram.BotToken != "" {
		sender, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram client", logger.ErrorField(err))
		}
		notifier = telegram.NewIdeaNotifier(sender)
	}

	uploader := filestorage.NewDisabledUploader()
	if cfg.Firebase.StorageBucket != "" {
		uploader, err = filestorage.NewFirebaseUploader(ctx, filestorage.Config{
			CredentialsFile: cfg.Firebase.CredentialsFile,
			Bucket:          cfg.Firebase.StorageBucket,
			DownloadBaseURL: cfg.Firebase.DownloadBaseURL,
		}, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize file storage", logger.ErrorField(err))
		}
	}

	// Initialize services
	lifecycleOpts := []service.Option{service.WithNotifier(notifier)}
	if baselineRepo != nil {
		lifecycleOpts = append(lifecycleOpts, service.WithBaselineRepository(baselineRepo))
	}
	lifecycleSvc := service.NewLifecycleService(ideaRepo, appLogger, lifecycleOpts...)
	ideaSvc := service.NewIdeaService(ideaRepo, lifecycleSvc, cfg.Ideas.DefaultPageSize, appLogger)
	attachmentSvc := service.NewAttachmentService(uploader, lifecycleSvc, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(delivery.RequestLogContext())
	if cfg.Ideas.MaxUploadSize > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", cfg.Ideas.MaxUploadSize)))
	}
	if d, err := time.ParseDuration(cfg.API.ReadTimeout); err == nil {
		e.Server.ReadTimeout = d
	}
	if d, err := time.ParseDuration(cfg.API.WriteTimeout); err == nil {
		e.Server.WriteTimeout = d
	}

	// Initialize handlers and routes
	ideaHandler := delivery.NewIdeaHandler(ideaSvc, attachmentSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	ideaHandler.RegisterRoutes(apiV1.Group("/ideas"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// buildRepositories wires the idea store selected by configuration. The returned baseline
// repository is nil when no offline side channel is configured.
func buildRepositories(cfg *config.Config, appLogger *logger.Logger) (repository.IdeaRepository, repository.BaselineRepository, func()) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var offline repository.OfflineIdeaRepository
	if cfg.Mirror.Backend != config.MirrorNone || cfg.Ideas.Store == config.StoreOffline {
		var store repository.BlobStore
		switch cfg.Mirror.Backend {
		case config.MirrorRedis:
			redisClient, err := redis.NewClient(redis.Config{
				Host:     cfg.Redis.Host,
				Port:     cfg.Redis.Port,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
				PoolSize: cfg.Redis.PoolSize,
			})
			if err != nil {
				appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
			}
			closers = append(closers, func() { _ = redisClient.Close() })
			store = repository.NewRedisBlobStore(redisClient.Client)
		case config.MirrorPostgres:
			db, err := postgres.NewDB(postgres.Config{
				Host:            cfg.Database.Host,
				Port:            cfg.Database.Port,
				User:            cfg.Database.User,
				Password:        cfg.Database.Password,
				DBName:          cfg.Database.DBName,
				SSLMode:         cfg.Database.SSLMode,
				MaxIdleConns:    cfg.Database.MaxIdleConns,
				MaxOpenConns:    cfg.Database.MaxOpenConns,
				ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			})
			if err != nil {
				appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
			}
			if sqlDB, err := db.DB.DB(); err == nil {
				closers = append(closers, func() { _ = sqlDB.Close() })
			}
			store = repository.NewPostgresBlobStore(db.DB)
		default:
			store = repository.NewMemoryBlobStore()
		}
		offline = repository.NewOfflineIdeaRepository(store, idgen.New(cfg.Mirror.IDGenerator), appLogger)
	}

	if cfg.Ideas.Store == config.StoreOffline {
		return offline, offline, cleanup
	}

	timeout, _ := time.ParseDuration(cfg.Firestore.Timeout)
	client := firestore.NewClient(firestore.Config{
		BaseURL:             cfg.Firestore.BaseURL,
		ProjectID:           cfg.Firestore.ProjectID,
		DatabaseID:          cfg.Firestore.DatabaseID,
		APIKey:              cfg.Firestore.APIKey,
		Timeout:             timeout,
		MaxRequestPerMinute: cfg.Firestore.MaxRequestPerMinute,
	}, appLogger)
	remote := repository.NewFirestoreIdeaRepository(client, cfg.Firestore.Collection, appLogger)

	if offline == nil {
		return remote, nil, cleanup
	}
	mirrored := repository.NewMirroredIdeaRepository(remote, offline, appLogger)
	return mirrored, mirrored, cleanup
}

// @title Stock Ideas API
// @version 1.0
// @description Lifecycle management for stock recommendations backed by a document store.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "ideas-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-ideas.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ideas-service CLI: %s\n", err)
		os.Exit(1)
	}
}
