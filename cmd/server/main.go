package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/blogposts/internal/handlers"
	"github.com/alimgiray/blogposts/internal/middleware"
	"github.com/alimgiray/blogposts/internal/repositories"
	"github.com/alimgiray/blogposts/internal/services"
	"github.com/alimgiray/blogposts/pkg/config"
	"github.com/alimgiray/blogposts/pkg/database"
	"github.com/alimgiray/blogposts/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	// Initialize the post store
	postRepo, closeStore, err := openPostRepository(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.WithError(err).Error("Failed to close database")
		}
	}()

	postService := services.NewPostService(postRepo)

	// Initialize router
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())
	handlers.SetupRoutes(router, postService)

	// Setup server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}

// openPostRepository opens the store selected by DB_DRIVER. The returned func closes it.
func openPostRepository(ctx context.Context, cfg *config.Config) (repositories.PostRepository, func() error, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLitePostRepository(db), db.Close, nil

	default:
		client, err := database.OpenMongo(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}

		repo := repositories.NewMongoPostRepository(client, cfg.Database.Name)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.WithError(err).Warn("Failed to ensure post indexes")
		}

		closeFn := func() error {
			return database.CloseMongo(client, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		}
		return repo, closeFn, nil
	}
}
