// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"go-auth-api/config"
	"go-auth-api/db"
	"go-auth-api/handler"
	"go-auth-api/logger"
	"go-auth-api/repository"
	"go-auth-api/router"
	"go-auth-api/service"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

// App holds the wired layers of the service.
type App struct {
	DB              *sql.DB
	Router          http.Handler
	AuthService     *service.AuthService
	QuestionService *service.SecurityQuestionService
}

// New wires repositories, services and handlers on top of an open database. cache may be
// nil, in which case the security question list is read straight from Postgres.
func New(cfg *config.Config, database *sql.DB, cache *redis.Client) (*App, error) {
	codec, err := service.NewTokenCodec(cfg.JWT.SecretKey, cfg.JWT.Algorithm)
	if err != nil {
		return nil, err
	}
	hasher := service.NewHasher(cfg.Security.BcryptCost)

	userRepo := repository.NewUserRepository(database)
	questionRepo := repository.NewSecurityQuestionRepository(database)
	tokenRepo := repository.NewTokenRepository(database)

	authService := service.NewAuthService(userRepo, questionRepo, tokenRepo, hasher, codec, service.AuthConfig{
		AccessTokenTTL:      cfg.AccessTokenTTL(),
		RefreshTokenTTL:     cfg.RefreshTokenTTL(),
		RefreshExtendWindow: cfg.RefreshExtendWindow(),
	})

	// A nil *redis.Client must not become a non-nil interface.
	var cacheClient service.ICacheClient
	if cache != nil {
		cacheClient = cache
	}
	questionService := service.NewSecurityQuestionService(questionRepo, cacheClient, cfg.CacheTTL())

	authHandler := handler.NewAuthHandler(authService)
	questionHandler := handler.NewSecurityQuestionHandler(questionService)

	return &App{
		DB:              database,
		Router:          router.NewRouter(authHandler, questionHandler, authService),
		AuthService:     authService,
		QuestionService: questionService,
	}, nil
}

type expiredTokenCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// runCleanup deletes expired refresh tokens every interval until ctx is cancelled.
func runCleanup(ctx context.Context, cleaner expiredTokenCleaner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := cleaner.CleanupExpired(ctx); err != nil && ctx.Err() == nil {
				logger.Log.WithError(err).Error("Expired refresh token cleanup failed")
			}
		}
	}
}

func Run() {
	config.LoadConfig(".")
	cfg := &config.AppConfig
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	rdb, err := db.ConnectRedis(cfg)
	if err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, security question caching disabled")
	} else {
		defer rdb.Close()
	}

	application, err := New(cfg, database, rdb)
	if err != nil {
		logger.Log.Fatalf("Error wiring application: %v", err)
	}

	if n, err := application.QuestionService.EnsureSeeded(context.Background()); err != nil {
		logger.Log.WithError(err).Warn("Could not seed security questions")
	} else if n > 0 {
		logger.Log.WithField("count", n).Info("Security questions seeded at startup")
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	var workers sync.WaitGroup
	if interval := time.Duration(cfg.Refresh.CleanupIntervalMinutes) * time.Minute; interval > 0 {
		workers.Add(1)
		go func() {
			defer workers.Done()
			runCleanup(workerCtx, application.AuthService, interval)
		}()
		logger.Log.WithField("interval", interval.String()).Info("Refresh token cleanup worker started")
	}

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	stopWorkers()
	workers.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
