package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sekor-bkc/pkg/cache"
	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/database"
	"sekor-bkc/pkg/jwt"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/queue"
	"sekor-bkc/pkg/storage"
	"sekor-bkc/services/api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "sekor-bkc/services/api/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	store       storage.Storage
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			log.Error("Failed to auto-migrate: %v", err)
			return nil, err
		}
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			// Redis only backs rate limiting and view dedup
			log.Warn("Failed to connect to redis: %v (continuing without cache)", err)
			redisClient = nil
		}
	}

	var queueClient *queue.Client
	if cfg.RabbitMQEnabled {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Warn("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
			queueClient = nil
		}
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Error("Failed to create storage: %v", err)
		return nil, err
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		store:       store,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
	}, nil
}

func (a *App) Run() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := Deps{
		Config:  a.cfg,
		Logger:  a.log,
		DB:      a.db,
		Redis:   a.redisClient,
		Storage: a.store,
		JWT:     a.jwtService,
	}
	// A nil *queue.Client must not end up inside the interface.
	if a.queueClient != nil {
		deps.Publisher = a.queueClient
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: NewRouter(deps),
	}

	go func() {
		a.log.Info("API server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down API server...")
}

// Shutdown drains in-flight requests, then releases the queue, redis and the
// SQL pool in that order.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	a.log.Info("API server exited")
	return shutdownErr
}
