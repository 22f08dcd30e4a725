package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/http/handlers"
	applog "shopfront/internal/log"
	"shopfront/internal/metrics"
	"shopfront/internal/repos"
	"shopfront/internal/session"
)

// csrfExempt marks the JSON endpoints the storefront scripts call directly.
func csrfExempt(c *fiber.Ctx) bool {
	p := c.Path()
	return strings.HasPrefix(p, "/cart/add/") || p == "/cart/update" || strings.HasPrefix(p, "/api/")
}

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	store := catalog.NewFileStore(cfg.CatalogPath)
	if err := store.EnsureSeed(); err != nil {
		log.Fatal(err)
	}

	sessions := session.NewCookieStore(cfg.SessionSecret)
	m := metrics.New()

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(m.Middleware())
	app.Use(helmet.New())
	// Cart badge count for every rendered page
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("cart_count", sessions.Load(c).Count())
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Next:           csrfExempt,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, store, sessions, m)

	app.Get("/", deps.ProductHandler.Index)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/api/products", deps.ProductHandler.APIProducts)

	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart/add/:id", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Get("/cart/clear", deps.CartHandler.Clear)

	app.Get("/checkout", deps.OrderHandler.CheckoutForm)
	app.Post("/checkout", deps.OrderHandler.Place)
	app.Get("/order/:id", deps.OrderHandler.Confirm)

	app.Get("/admin", deps.AdminHandler.Dashboard)
	app.Post("/admin", deps.AdminHandler.AddProduct)
	app.Post("/admin/delete/:id", deps.AdminHandler.DeleteProduct)

	app.Get("/metrics", m.Handler())
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
