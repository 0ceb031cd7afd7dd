package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/config"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	"github.com/rogerio-castellano/uniform-analytics/internal/db"
	api "github.com/rogerio-castellano/uniform-analytics/internal/http"
	"github.com/rogerio-castellano/uniform-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/uniform-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/uniform-analytics/internal/logger"
	"github.com/rogerio-castellano/uniform-analytics/internal/redissvc"
	"github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

func newServeCmd() *cobra.Command {
	var configDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analytics HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml")
	return cmd
}

type stores struct {
	orders  repo.OrderRepository
	batches repo.BatchRepository
	schools repo.SchoolRepository
	close   func()
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		database, err := db.Connect(cfg.Postgres.DSN)
		if err != nil {
			return stores{}, err
		}
		return stores{
			orders:  repo.NewPostgresOrderRepository(database),
			batches: repo.NewPostgresBatchRepository(database),
			schools: repo.NewPostgresSchoolRepository(database),
			close:   func() { database.Close() },
		}, nil
	case config.BackendMongo:
		client, database, err := db.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return stores{}, err
		}
		return stores{
			orders:  repo.NewMongoOrderRepository(database),
			batches: repo.NewMongoBatchRepository(database),
			schools: repo.NewMongoSchoolRepository(database),
			close:   func() { _ = client.Disconnect(context.Background()) },
		}, nil
	default:
		return stores{
			orders:  repo.NewInMemoryOrderRepository(),
			batches: repo.NewInMemoryBatchRepository(),
			schools: repo.NewInMemorySchoolRepository(),
			close:   func() {},
		}, nil
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(logger.Options{
		Mode:       cfg.Log.Mode,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Error("could not open stores", "backend", cfg.Store.Backend, "error", err)
		return err
	}
	defer st.close()

	opts := []dashboard.Option{dashboard.WithLogger(log)}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		rs := redissvc.NewRedisService(rdb, cfg.Redis.CacheTTL)
		if err := rs.Ping(ctx); err != nil {
			log.Error("could not connect to Redis", "addr", cfg.Redis.Addr, "error", err)
			return err
		}
		opts = append(opts, dashboard.WithCache(rs), dashboard.WithLocker(rs.Locker(), cfg.Redis.LockTTL))
	}

	agg := analytics.NewAggregator(analytics.WithLocation(cfg.Location()))
	svc := dashboard.NewService(st.orders, st.batches, st.schools, agg, opts...)
	svc.Warm(ctx)

	handlers.SetOrderRepo(st.orders)
	handlers.SetBatchRepo(st.batches)
	handlers.SetSchoolRepo(st.schools)
	handlers.SetDashboardService(svc)
	handlers.SetLogger(log)

	limiter := rate_limiter.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(api.WithRateLimiter(limiter), api.WithLogger(log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := svc.Run(gctx, cfg.Analytics.RefreshInterval); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		limiter.StartVisitorCleanupLoop(gctx, time.Minute, 3*time.Minute)
		return nil
	})
	g.Go(func() error {
		log.Info("server running", "addr", cfg.HTTP.Addr, "backend", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
