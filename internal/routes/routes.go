package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	listingHandler *handlers.ListingHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to " + cfg.ProjectName + " API"})
	})

	// Uploaded images are public
	app.Static("/uploads/listings", cfg.UploadDir)

	api := app.Group(cfg.APIPrefix)

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Login — stricter rate limit: 10 req/min per IP
	login := api.Group("/login")
	login.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	login.Post("/access-token", authHandler.Login)

	jwtGuard := middleware.JWTProtected(cfg)
	resolveUser := middleware.CurrentUser(db)

	// Users
	api.Post("/users/", userHandler.Create)
	api.Get("/users/me", jwtGuard, resolveUser, userHandler.Me)
	api.Put("/users/me", jwtGuard, resolveUser, userHandler.UpdateMe)

	// Listings — browsing is public, mutation requires the owner
	api.Get("/listings/", listingHandler.List)
	api.Get("/listings/me", jwtGuard, resolveUser, listingHandler.ListMine)
	api.Post("/listings/", jwtGuard, resolveUser, listingHandler.Create)
	api.Put("/listings/:id", jwtGuard, resolveUser, listingHandler.Update)
	api.Delete("/listings/:id", jwtGuard, resolveUser, listingHandler.Delete)

	// Image upload (no auth, matching the web client's direct use)
	api.Post("/upload/", uploadHandler.Upload)
}
