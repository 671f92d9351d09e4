package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"recruitdesk/internal/jwttoken"
	"recruitdesk/internal/platform/config"
	"recruitdesk/internal/platform/httpserver"
	"recruitdesk/internal/platform/logger"
	platformredis "recruitdesk/internal/platform/redis"
	"recruitdesk/internal/recruitment/cache"
	"recruitdesk/internal/recruitment/handler"
	"recruitdesk/internal/recruitment/metrics"
	"recruitdesk/internal/recruitment/service"
	memorystore "recruitdesk/internal/recruitment/store/memory"
	pgstore "recruitdesk/internal/recruitment/store/postgres"
	httptransport "recruitdesk/internal/transport/http"
	"recruitdesk/pkg/platform/audit"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres when configured, in-memory otherwise so the dashboard can be
	// developed without infrastructure.
	var store service.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		if err := pgstore.EnsureSchema(ctx, db); err != nil {
			log.Error("ensure schema", "error", err.Error())
			os.Exit(1)
		}
		store = pgstore.NewPostgres(db)
		log.Info("participant store ready", "backend", "postgres")
	} else {
		store = memorystore.NewInMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory participant store")
	}

	var (
		statsCache  *cache.StatsCache
		cacheHealth func(context.Context) error
	)
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, stats cache disabled", "error", err.Error())
	} else if redisClient != nil {
		defer redisClient.Close()
		statsCache = cache.NewStatsCache(redisClient.Client, cfg.StatsCacheTTL)
		cacheHealth = redisClient.Health
		log.Info("stats cache ready", "ttl", cfg.StatsCacheTTL.String())
	}

	var publisher audit.Publisher = audit.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			log.Error("connect audit broker", "error", err.Error())
			os.Exit(1)
		}
		publisher = kafkaPublisher
		log.Info("audit publisher ready", "topic", cfg.AuditTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, audit events discarded")
	}
	defer publisher.Close()

	m := metrics.New()
	svc := service.NewService(store, statsCache, publisher, m, log)
	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		JWTValidator: jwttoken.NewAdapter(jwtService),
		Recruitment:  handler.New(svc, log, m),
		StoreHealth:  svc.Health,
		CacheHealth:  cacheHealth,
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting recruitdesk", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("recruitdesk stopped")
}
