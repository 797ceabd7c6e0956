package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avolkov/lotomart/internal/cache"
	"github.com/avolkov/lotomart/internal/catalog"
	"github.com/avolkov/lotomart/internal/config"
	"github.com/avolkov/lotomart/internal/events"
	"github.com/avolkov/lotomart/internal/handlers"
	"github.com/avolkov/lotomart/internal/metrics"
	"github.com/avolkov/lotomart/internal/pg"
	"github.com/avolkov/lotomart/internal/repo"
	"github.com/avolkov/lotomart/internal/scheduler"
	"github.com/avolkov/lotomart/internal/service"
	"github.com/avolkov/lotomart/internal/service/drawservice"
	"github.com/avolkov/lotomart/pkg/logger"
)

const drawCacheTTL = 24 * time.Hour

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *scheduler.Service
	publisher *events.KafkaPublisher

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

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	// Cache and events are optional: the draw service treats a nil
	// interface as "feature off".
	var drawCache drawservice.Cache
	if cfg.RedisAddress != "" {
		client, err := cache.ConnectRedis(cfg.RedisAddress)
		if err != nil {
			zap.L().Error("redis connect failed: ", zap.Error(err))
			return fmt.Errorf("can't connect to redis: %w", err)
		}
		drawCache = cache.New(client, drawCacheTTL)
	}
	var publisher drawservice.Publisher
	if cfg.KafkaBrokers != "" {
		a.publisher = events.NewKafkaPublisher(events.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		publisher = a.publisher
	}

	cat := catalog.New()
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, cat, drawCache, publisher)
	a.api = handlers.New(a.srv, cat)
	a.scheduler = scheduler.New(cfg, a.srv.DrawService, cat)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startMetricsServer(ctx, pool)
	a.startScheduler(ctx)

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

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startMetricsServer(ctx context.Context, pool *pgxpool.Pool) {
	server := metrics.StartServer(a.cfg.MetricsAddress, func(ctx context.Context) error {
		return pool.Ping(ctx)
	})

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()
}

func (a *Application) startScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.scheduler.Start(ctx)
	}()
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
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			zap.L().Error("kafka writer close failed", zap.Error(err))
		}
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
