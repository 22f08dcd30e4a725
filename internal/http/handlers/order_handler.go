package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopfront/internal/domain"
	applog "shopfront/internal/log"
	"shopfront/internal/metrics"
	"shopfront/internal/repos"
	"shopfront/internal/services"
	"shopfront/internal/session"
)

type OrderHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Orders   *repos.OrderRepo
	Sessions session.Store
	Metrics  *metrics.Metrics
}

// GET /checkout
func (h *OrderHandler) CheckoutForm(c *fiber.Ctx) error {
	cv, err := h.Cart.View(h.Sessions.Load(c))
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "checkout", fiber.Map{"Cart": cv})
}

// POST /checkout — snapshots the cart into an order, clears the cart and
// redirects to the confirmation page.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	address := strings.TrimSpace(c.FormValue("address"))

	cart := h.Sessions.Load(c)
	orderID, err := h.Checkout.Place(cart, name, email, address)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Redirect("/cart")
		}
		applog.Error(c, "order.place", err, nil)
		return fiber.ErrInternalServerError
	}
	h.Sessions.Clear(c)
	h.Metrics.OrdersPlaced.Inc()
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID})
	return c.Redirect("/order/" + strconv.FormatInt(orderID, 10))
}

// GET /order/:id
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	o, err := h.Orders.GetByID(id)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderNotFound) {
			applog.Error(c, "order.get", err, map[string]any{"order_id": id})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": o})
}
