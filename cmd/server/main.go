package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hotmeal/recommender/internal/cache"
	"github.com/hotmeal/recommender/internal/config"
	"github.com/hotmeal/recommender/internal/handler"
	"github.com/hotmeal/recommender/internal/recommend"
	"github.com/hotmeal/recommender/internal/repository"
	"github.com/hotmeal/recommender/internal/router"
	"github.com/hotmeal/recommender/internal/service"
	"github.com/hotmeal/recommender/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse database config")
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("database not ready")
	}
	log.Info().Msg("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate down")
		}
		log.Info().Msg("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate up")
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("failed to check seed")
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse redis url")
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	resultCache := cache.NewCache(redisClient, cfg.CacheTTL())
	if err := resultCache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis not ready")
	}
	log.Info().Msg("connected to Redis")

	// ------------ Wiring ---------------
	repo := repository.New(pool, log)

	popular := recommend.NewPopularityScorer(repo, log)
	itemCF := recommend.NewItemCFScorer(repo, log)
	profile := recommend.NewProfileScorer(repo, log)

	engine := recommend.NewEngine(popular, itemCF, profile, repo, recommend.Config{
		DefaultLimit:    cfg.RecommendLimitDefault,
		MaxLimit:        cfg.RecommendLimitMax,
		DefaultStrategy: recommend.ParseStrategy(cfg.RecommendStrategyDefault),
		DefaultWeights: recommend.Weights{
			Profile: cfg.RecommendWeightUser,
			ItemCF:  0.0,
			Popular: cfg.RecommendWeightPopular,
		},
	}, log)

	svc := service.NewService(engine, popular, resultCache, log)
	h := handler.NewHandler(svc)
	r := router.Setup(h, []byte(cfg.JWTSecret))

	// ---------------- Server --------------------
	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Info().Msgf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("check users count: %w", err)
	}
	if count > 0 {
		log.Info().Int("users", count).Msg("database already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, pool, log)
}
