package handlers

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ultrapopular/internal/config"
	applog "ultrapopular/internal/log"
)

const (
	maxBodyBytes   = 1 << 20 // 1 MiB
	globalPerMin   = 300
	csrfHeaderName = "X-Csrf-Token"
)

type AppOptions struct {
	Gatherer  prometheus.Gatherer // nil disables /metrics
	AccessLog io.Writer           // nil disables the access log
}

// NewApp builds the storefront server with its middleware and routes.
func NewApp(cfg config.Config, deps *Deps, opts AppOptions) *fiber.App {
	engine := html.New(cfg.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: ErrorHandler,
	})
	app.Server().MaxRequestBodySize = maxBodyBytes

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: opts.AccessLog}))
	}
	// product images are served from another origin
	app.Use(helmet.New(helmet.Config{CrossOriginEmbedderPolicy: "unsafe-none"}))
	app.Use(limiter.New(limiter.Config{
		Max:        globalPerMin,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "header:" + csrfHeaderName,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		ContextKey:     CSRFContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"reason": err.Error()})
			msg := "Falha na verificação de segurança. Recarregue a página e tente novamente."
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusForbidden).JSON(errorBody("CSRF", msg, nil, nil))
			}
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": msg})
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", cfg.StaticDir)

	// ---------- App handlers ----------
	app.Get("/", deps.StorefrontHandler.Home)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/v1")
	api.Get("/products", deps.CatalogHandler.Products)
	api.Get("/stores", deps.CatalogHandler.Stores)
	api.Get("/session", deps.CartHandler.View)

	api.Post("/cart/items", deps.CartHandler.Add)
	api.Put("/cart/items/:id", deps.CartHandler.SetQuantity)
	api.Delete("/cart/items/:id", deps.CartHandler.Remove)

	api.Put("/checkout/store", deps.CheckoutHandler.SelectStore)
	api.Put("/checkout/customer", deps.CheckoutHandler.UpdateCustomer)
	api.Put("/checkout/addendum", deps.CheckoutHandler.UpdateAddendum)

	submitLimiter := limiter.New(limiter.Config{
		Max:        cfg.SubmitPerMin,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|submit"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.submit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(errorBody("RATE_LIMITED", "Muitas tentativas. Aguarde um momento e tente novamente.", nil, nil))
		},
	})
	api.Post("/orders", submitLimiter, deps.OrderHandler.Submit)

	app.Use(NotFound)
	return app
}
