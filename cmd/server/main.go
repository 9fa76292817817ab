package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/khemprogrammer/AwasarHub/internal/config"
	"github.com/khemprogrammer/AwasarHub/internal/db"
	"github.com/khemprogrammer/AwasarHub/internal/handler"
	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
	"github.com/khemprogrammer/AwasarHub/internal/router"
	"github.com/khemprogrammer/AwasarHub/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "awasarhub")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	// Repositories
	contentRepo := repository.NewContentRepo(pool)
	jobRepo := repository.NewJobRepo(pool)
	oppRepo := repository.NewOpportunityRepo(pool)
	adRepo := repository.NewAdRepo(pool)
	engagementRepo := repository.NewEngagementRepo(pool)
	userRepo := repository.NewUserRepo(pool)
	briefingRepo := repository.NewBriefingRepo(pool)

	// Services
	rankSvc := service.NewRankService()
	engagementSvc := service.NewEngagementService(engagementRepo, cache)
	feedSvc := service.NewFeedService(contentRepo, jobRepo, oppRepo, adRepo, engagementSvc, rankSvc)
	userSvc := service.NewUserService(userRepo)
	briefingSvc := service.NewBriefingService(briefingRepo)

	// Background counter refresher, driven by Postgres NOTIFY
	worker := service.NewCounterWorker(pool, engagementRepo, cache)
	go worker.Start(ctx)

	h := &router.Handlers{
		Feed:        handler.NewFeedHandler(feedSvc, engagementSvc, userSvc, contentRepo),
		Engagement:  handler.NewEngagementHandler(engagementSvc),
		Job:         handler.NewJobHandler(jobRepo),
		Opportunity: handler.NewOpportunityHandler(oppRepo),
		Ad:          handler.NewAdHandler(adRepo),
		User:        handler.NewUserHandler(userSvc),
		Briefing:    handler.NewBriefingHandler(briefingSvc, userSvc),
		Stats:       handler.NewStatsHandler(userSvc),
		Health:      handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "AwasarHub API",
		ServerHeader: "AwasarHub",
	})

	router.Setup(app, h, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("AwasarHub backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
