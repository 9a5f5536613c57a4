package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/cascade-admin/locations/internal/api/http"
	"github.com/cascade-admin/locations/internal/cache"
	"github.com/cascade-admin/locations/internal/config"
	"github.com/cascade-admin/locations/internal/db"
	"github.com/cascade-admin/locations/internal/repository"
	"github.com/cascade-admin/locations/internal/server"
	"github.com/cascade-admin/locations/internal/service"
	"github.com/cascade-admin/locations/pkg/logger"
)

func main() {
	// Init cfg from .env and environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting locations admin", zap.String("db_driver", cfg.Database.Driver))
	logger.Debug("debug messages are enabled")

	// Init database
	dbConn, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("database connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbConn.Close()
		if err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("database connection done")

	if cfg.Database.Migrate {
		if err := db.Migrate(dbConn, cfg.Database.Driver); err != nil {
			logger.Error("database migration failed", zap.Error(err))
			return
		}
		version, err := db.MigrationVersion(dbConn, cfg.Database.Driver)
		if err != nil {
			logger.Error("read migration version failed", zap.Error(err))
			return
		}
		logger.Info("database migrations applied", zap.Int64("version", version))
	}

	if cfg.Database.Seed {
		seeded, err := repository.Seed(context.Background(), dbConn)
		if err != nil {
			logger.Error("database seeding failed", zap.Error(err))
			return
		}
		logger.Info("database fixtures checked", zap.Bool("seeded", seeded))
	}

	optionCache, redisClient, err := cache.NewOptionCache(cfg.Cache)
	if err != nil {
		logger.Error("cache init failed", zap.Error(err))
		return
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("error when closing redis", zap.Error(err))
			}
		}()
		logger.Info("redis connection done", zap.String("type", cfg.Cache.Type))
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbConn)
	services := service.NewServices(service.Deps{
		Repos: repos,
		Cache: optionCache,
	})
	handlers := apiHttp.NewHandlers(services)

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
