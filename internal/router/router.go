package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/khemprogrammer/AwasarHub/internal/handler"
	"github.com/khemprogrammer/AwasarHub/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Feed        *handler.FeedHandler
	Engagement  *handler.EngagementHandler
	Job         *handler.JobHandler
	Opportunity *handler.OpportunityHandler
	Ad          *handler.AdHandler
	User        *handler.UserHandler
	Briefing    *handler.BriefingHandler
	Stats       *handler.StatsHandler
	Health      *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before the API group, no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	feedLimiter := middleware.NewFeedRateLimiter()
	engagementLimiter := middleware.NewEngagementRateLimiter()
	commentLimiter := middleware.NewCommentRateLimiter()
	postingLimiter := middleware.NewPostingRateLimiter()
	statsLimiter := middleware.NewStatsRateLimiter()

	// API routes
	api := app.Group("/api")

	// Feed routes
	api.Get("/feed", h.Feed.List, feedLimiter.Handler())
	api.Post("/feed", h.Feed.Create, postingLimiter.Handler())
	api.Get("/feed/personalized", h.Feed.Personalized, feedLimiter.Handler())
	api.Get("/feed/global_feed", h.Feed.Global, feedLimiter.Handler())
	api.Post("/feed/log", h.Feed.Log, engagementLimiter.Handler())
	// Registered after the named feed routes so ":id" never shadows them.
	api.Get("/feed/:id", h.Feed.GetByID, feedLimiter.Handler())

	// Engagement routes
	api.Post("/engagement/action", h.Engagement.Action, engagementLimiter.Handler())
	api.Get("/engagement/comments", h.Engagement.ListComments, feedLimiter.Handler())
	api.Post("/engagement/comments", h.Engagement.CreateComment, commentLimiter.Handler())

	// Job routes
	api.Get("/jobs", h.Job.List, feedLimiter.Handler())
	api.Post("/jobs", h.Job.Create, postingLimiter.Handler())

	// Opportunity routes
	api.Get("/opportunities", h.Opportunity.List, feedLimiter.Handler())
	api.Post("/opportunities", h.Opportunity.Create, postingLimiter.Handler())

	// Advertisement routes
	api.Get("/ads", h.Ad.List, feedLimiter.Handler())

	// Profile routes
	api.Get("/auth/me", h.User.Me, feedLimiter.Handler())
	api.Put("/auth/me", h.User.UpdateMe, postingLimiter.Handler())

	// Briefing routes
	api.Get("/briefing/daily", h.Briefing.Daily, feedLimiter.Handler())

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, statsLimiter.Handler())
}
