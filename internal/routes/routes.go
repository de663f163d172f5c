package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/ozanturhan/artmarket-backend/internal/config"
	"github.com/ozanturhan/artmarket-backend/internal/handlers"
	"github.com/ozanturhan/artmarket-backend/internal/metrics"
	"github.com/ozanturhan/artmarket-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	artworkHandler *handlers.ArtworkHandler,
	orderHandler *handlers.OrderHandler,
	reportHandler *handlers.ReportHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Catalog browsing is public.
	api.Get("/artworks", artworkHandler.List)
	api.Get("/artworks/categories/list", artworkHandler.Categories)
	api.Get("/artworks/artist/:artistId", artworkHandler.ListByArtist)
	api.Get("/artworks/:id", artworkHandler.GetByID)

	// Protected routes get the middleware individually so JWT never
	// shadows the public catalog. LoadActor resolves the JWT subject to a
	// live user row; fine-grained decisions (ownership, roles) live in
	// the authz engine inside the services.
	jwt := middleware.JWTProtected(cfg)
	actor := middleware.LoadActor(db)

	api.Post("/artworks", jwt, actor, artworkHandler.Create)
	api.Put("/artworks/:id", jwt, actor, artworkHandler.Update)
	api.Delete("/artworks/:id", jwt, actor, artworkHandler.Delete)

	api.Post("/orders", jwt, actor, orderHandler.Create)
	api.Get("/orders", jwt, actor, orderHandler.List)
	api.Get("/orders/artist/sales", jwt, actor, reportHandler.ArtistSales)
	api.Get("/orders/admin/sales-report", jwt, actor, reportHandler.GlobalSales)
	api.Get("/orders/:id", jwt, actor, orderHandler.GetByID)
	api.Put("/orders/:id/status", jwt, actor, orderHandler.UpdateStatus)

	api.Get("/users", jwt, actor, userHandler.List)
	api.Get("/users/stats", jwt, actor, userHandler.Stats)
	api.Put("/users/:id/role", jwt, actor, userHandler.UpdateRole)
	api.Delete("/users/:id", jwt, actor, userHandler.Delete)
}
