package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/TheODDYSEY/sme-secuaware/internal/adapter/cache"
	"github.com/TheODDYSEY/sme-secuaware/internal/bootstrap"
	"github.com/TheODDYSEY/sme-secuaware/internal/config"
	httptransport "github.com/TheODDYSEY/sme-secuaware/internal/http"
	"github.com/TheODDYSEY/sme-secuaware/internal/http/handler"
	httpmiddleware "github.com/TheODDYSEY/sme-secuaware/internal/http/middleware"
	apimiddleware "github.com/TheODDYSEY/sme-secuaware/internal/middleware"
	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
	"github.com/TheODDYSEY/sme-secuaware/internal/server"
	"github.com/TheODDYSEY/sme-secuaware/internal/service"
	"github.com/TheODDYSEY/sme-secuaware/internal/telemetry"
	"github.com/TheODDYSEY/sme-secuaware/internal/token"
)

func main() {
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newSnowflake,
			newPGXPool,
			newAccountRepository,
			newAssessmentRepository,
			newThreatRepository,
			newEducationRepository,
			newRedisClient,
			newViewCounter,
			newTokenService,
			newRateLimiter,
			newGateway,
			service.NewAuthService,
			service.NewAssessmentService,
			service.NewThreatService,
			service.NewEducationService,
			handler.NewAuthHandler,
			handler.NewAssessmentHandler,
			handler.NewThreatHandler,
			handler.NewEducationHandler,
			newAuthMiddleware,
			httptransport.NewRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(useTelemetry, bootstrap.EnsureAdmin, bootstrap.SeedContent, startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Production() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Tracing, error) {
	tracing, err := telemetry.Setup(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return tracing.Shutdown(stopCtx)
		},
	})

	return tracing, nil
}

func newSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

func newPGXPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

func newAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return repository.NewPostgresAccountRepo(pool)
}

func newAssessmentRepository(pool *pgxpool.Pool) repository.AssessmentRepository {
	return repository.NewPostgresAssessmentRepo(pool)
}

func newThreatRepository(pool *pgxpool.Pool) repository.ThreatRepository {
	return repository.NewPostgresThreatRepo(pool)
}

func newEducationRepository(pool *pgxpool.Pool) repository.EducationRepository {
	return repository.NewPostgresEducationRepo(pool)
}

func newRedisClient(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func newViewCounter(client redis.UniversalClient) repository.ViewCounter {
	return cache.NewRedisViewCounter(client)
}

func newTokenService(cfg config.Config) *token.Service {
	return token.NewService([]byte(cfg.TokenSecret), cfg.TokenTTL)
}

func newRateLimiter(cfg config.Config) *apimiddleware.RateLimiter {
	return apimiddleware.NewRateLimiter(cfg.RateLimitRPM)
}

func newGateway() *httpmiddleware.Gateway {
	return httpmiddleware.NewGateway()
}

func newAuthMiddleware(authService *service.AuthService) *httpmiddleware.Auth {
	return &httpmiddleware.Auth{AuthService: authService}
}

func startHTTPServer(lc fx.Lifecycle, srv *server.HTTPServer, cfg config.Config, logger *zap.Logger) {
	addr := ":" + cfg.HTTPPort
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runCtx, stop := context.WithCancel(context.Background())
			cancel = stop
			done = make(chan struct{})

			go func() {
				if err := srv.Run(runCtx, addr); err != nil {
					logger.Error("http server stopped", zap.Error(err))
				}
				close(done)
			}()

			logger.Info("http server listening", zap.String("addr", addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			if done == nil {
				return nil
			}
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func useTelemetry(*telemetry.Tracing) {}
