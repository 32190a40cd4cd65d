package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"geoalert/internal/api"
	"geoalert/internal/api/handlers/http/system"
	"geoalert/internal/config"
	"geoalert/internal/events"
	"geoalert/internal/metrics"
	"geoalert/internal/service"
	"geoalert/internal/storage/memory"
	"geoalert/internal/storage/postgres"
	"geoalert/internal/storage/redis"
	"geoalert/internal/workers"
	"geoalert/pkg/logger"
)

const (
	redisNamespace  = "geoalert"
	readStatePrefix = "geoalert:read"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Bus           *events.Bus
	AMQP          *events.AMQPSink
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	WebhookSender *service.WebhookSender
	Refresher     *workers.IndexRefresher
	Metrics       *metrics.Metrics
}

type backend struct {
	kv        service.RecordStore
	readState service.ReadStateRepository
	outbox    *redis.Outbox
	checks    map[string]system.Check
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger, Metrics: metrics.New()}

	b, err := c.initBackend(ctx, cfg)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	c.Bus = events.NewBus(logger)

	store := service.NewAlertStore(b.kv, c.Bus, c.Metrics, logger)

	// a nil *redis.Outbox must not become a non-nil interface
	var outbox service.NotificationOutbox
	if b.outbox != nil {
		outbox = b.outbox
	}
	dispatcher := service.NewDispatcher(store, b.kv, outbox, service.DispatcherConfig{
		RadiusKm: cfg.Dispatch.RadiusKm,
		Timeout:  cfg.Dispatch.Timeout,
	}, c.Metrics, logger)
	if err := dispatcher.Rebuild(ctx); err != nil {
		logger.Warn("initial index rebuild failed", slog.Any("error", err))
	}
	c.Bus.Subscribe("dispatcher", dispatcher.Handle)

	if cfg.AMQP.URL != "" {
		logger.Info("Initializing AMQP sink", slog.String("exchange", cfg.AMQP.Exchange))
		sink, err := events.DialAMQPSink(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init amqp: %w", err)
		}
		c.AMQP = sink
		c.Bus.Subscribe("amqp", sink.Handle)
	}

	if b.outbox != nil {
		c.WebhookSender = service.NewWebhookSender(logger, cfg.Webhook, b.outbox)
	}
	c.Refresher = workers.NewIndexRefresher(dispatcher, cfg.Dispatch.RefreshInterval, logger)

	tracker := service.NewReadStateTracker(b.readState, c.Metrics, logger)
	svc := service.NewService(
		service.NewReportService(store, store, dispatcher, cfg.Dispatch.NearbyTimeout, logger),
		service.NewConversationAssembler(store),
		service.NewNotificationCenter(dispatcher, tracker, logger),
		service.NewStatsService(store),
	)

	c.HttpServer = api.NewServer(ctx, cfg, logger, svc, c.Metrics, b.checks)
	logger.Info("Initialized server", slog.String("backend", cfg.Storage.Backend))

	return c, nil
}

func (c *Components) initBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	b := &backend{checks: map[string]system.Check{}}

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		c.logger.Info("Initializing Redis")
		rdb, err := redis.NewRedis(ctx, cfg, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = rdb
		b.kv = redis.NewKV(rdb.Client, redisNamespace)
		b.readState = redis.NewReadState(rdb.Client, readStatePrefix)
		if cfg.WebhookEnabled() {
			b.outbox = redis.NewOutbox(rdb.Client, cfg.Webhook.Queue)
		}
		b.checks["redis"] = func(ctx context.Context) error { return rdb.Client.Ping(ctx).Err() }

	case config.BackendPostgres:
		c.logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		b.kv = pg.KV
		b.readState = memory.NewReadState()
		b.checks["postgres"] = func(ctx context.Context) error { return pg.Pool.Ping(ctx) }

	default:
		c.logger.Warn("Using in-memory storage, state is lost on restart")
		b.kv = memory.NewKV()
		b.readState = memory.NewReadState()
	}

	return b, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll drains the event bus before closing the stores the
// subscribers write into.
func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Bus != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.Bus.Close(ctx); err != nil {
			c.logger.Error("Event bus drain incomplete", slog.Any("error", err))
		}
		cancel()
	}
	if c.AMQP != nil {
		c.AMQP.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
