package handlers_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/http/handlers"
	"shopfront/internal/metrics"
	"shopfront/internal/repos"
	"shopfront/internal/session"
)

var testProducts = []domain.Product{
	{ID: 1, Name: "Mug", Price: 14.50, Image: "/static/img/placeholder.jpg"},
	{ID: 2, Name: "Tote", Price: 22.00, Image: "/static/img/placeholder.jpg"},
}

// newTestApp wires the real routes against a tmpdir catalog and an in-memory
// order store. CSRF and rate limiting stay out; they are covered by the
// middleware stack, not the handlers.
func newTestApp(t *testing.T) (*fiber.App, *catalog.FileStore) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	b, err := json.Marshal(testProducts)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))
	store := catalog.NewFileStore(path)

	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := session.NewCookieStore("test-secret")
	m := metrics.New()

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("cart_count", sessions.Load(c).Count())
		return c.Next()
	})

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

	return app, store
}

func extractCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
