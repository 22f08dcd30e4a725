package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopfront/internal/domain"
	applog "shopfront/internal/log"
	"shopfront/internal/metrics"
	"shopfront/internal/services"
	"shopfront/internal/session"
	"shopfront/internal/validate"
)

type CartHandler struct {
	Cart     *services.CartService
	Sessions session.Store
	Metrics  *metrics.Metrics
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	cart := h.Sessions.Load(c)
	cv, err := h.Cart.View(cart)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// POST /cart/add/:id
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": "product not found"})
	}
	cart := h.Sessions.Load(c)
	count, err := h.Cart.Add(cart, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": "product not found"})
		}
		applog.Error(c, "cart.add", err, map[string]any{"product_id": id})
		return fiber.ErrInternalServerError
	}
	h.Sessions.Save(c, cart)
	h.Metrics.CartAdds.Inc()
	return c.JSON(fiber.Map{"ok": true, "cart_count": count})
}

// POST /cart/update — JSON body maps product id to quantity; qty <= 0 removes
// the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var changes map[string]int
	if err := json.Unmarshal(c.Body(), &changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid body"})
	}
	cart := h.Sessions.Load(c)
	count := h.Cart.SetQuantities(cart, changes)
	h.Sessions.Save(c, cart)
	return c.JSON(fiber.Map{"ok": true, "cart_count": count})
}

// GET /cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Sessions.Clear(c)
	return c.Redirect("/")
}
