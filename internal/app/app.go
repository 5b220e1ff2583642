package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/betledger/internal/config"
	"github.com/GlebRadaev/betledger/internal/events"
	"github.com/GlebRadaev/betledger/internal/handlers"
	"github.com/GlebRadaev/betledger/internal/metrics"
	"github.com/GlebRadaev/betledger/internal/pg"
	"github.com/GlebRadaev/betledger/internal/repo"
	"github.com/GlebRadaev/betledger/internal/service"
	"github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/GlebRadaev/betledger/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	metrics *metrics.Metrics

	pool      *pgxpool.Pool
	redis     *redis.Client
	publisher events.Publisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid configuration", zap.Error(err))
		return fmt.Errorf("invalid config: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	redisClient, err := getRedisClient(ctx, cfg)
	if err != nil {
		zap.L().Error("redis unavailable: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.redis = redisClient
	a.publisher = newPublisher(cfg)
	a.metrics = metrics.New()
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, auth.NewRedisRevocationStore(redisClient), a.publisher)
	a.api = handlers.New(a.srv, a.metrics, cfg.CORSOrigins)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.serve(ctx, "http server", cfg.Address, router)
	a.serve(ctx, "metrics server", cfg.MetricsAddress, a.metrics.Handler(func(ctx context.Context) error {
		return pool.Ping(ctx)
	}))

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func getRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		zap.L().Info("no kafka brokers configured, activity events disabled")
		return events.NopPublisher{}
	}
	zap.L().Info("publishing activity events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic), zap.Int("workers", cfg.EventWorkers), zap.Int("queue", cfg.EventQueue))
	kafkaPublisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	return events.NewAsyncPublisher(kafkaPublisher, cfg.EventWorkers, cfg.EventQueue)
}

func (a *Application) serve(ctx context.Context, name, addr string, handler http.Handler) {
	server := http.Server{
		Addr:    addr,
		Handler: handler,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting "+name, zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("%s exited with error: %w", name, err)
		}
	}()
}

// closeClients releases the external clients after both servers have stopped.
func (a *Application) closeClients() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			zap.L().Warn("can't close event publisher", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("can't close redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.closeClients()

	return appErr
}
