package routes

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/config"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/middleware"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Pages  *handlers.PageHandler
	Data   *handlers.DataHandler
	Health *handlers.HealthHandler
}

// Setup registers every route. Order matters: the emergency route comes
// first so nothing else can intercept it, and the catch-all page route comes last.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	sessions middleware.SessionResolver,
	gatherer prometheus.Gatherer,
	h Handlers,
) {
	// Emergency exit (no session, no rate limit)
	app.Get("/emergency-logout", h.Auth.EmergencyLogout)

	// Login: 10 req/min per IP
	loginLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Get("/login", h.Auth.LoginPage)
	app.Post("/login", loginLimiter, h.Auth.Login)
	app.Post("/logout", h.Auth.Logout)

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Data provider operations (session required). Fixed segments before :id.
	apiSession := middleware.APISession(cfg, sessions)
	api.Get("/:resource", apiSession, h.Data.List)
	api.Get("/:resource/many", apiSession, h.Data.GetMany)
	api.Get("/:resource/reference", apiSession, h.Data.GetManyReference)
	api.Get("/:resource/:id", apiSession, h.Data.GetOne)
	api.Post("/:resource", apiSession, h.Data.Create)
	api.Put("/:resource", apiSession, h.Data.UpdateMany)
	api.Put("/:resource/:id", apiSession, h.Data.Update)
	api.Delete("/:resource", apiSession, h.Data.DeleteMany)
	api.Delete("/:resource/:id", apiSession, h.Data.Delete)

	// Admin pages (session required, anonymous visitors go to /login)
	pageSession := middleware.PageSession(cfg, sessions)
	app.Get("/", pageSession, h.Pages.Dashboard)
	app.Get("/:resource", pageSession, h.Pages.List)
}
