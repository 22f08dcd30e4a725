package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "shopfront/internal/log"
	"shopfront/internal/repos"
	"shopfront/internal/services"
	"shopfront/internal/validate"
)

const adminOrderLimit = 200

// AdminHandler has no auth gate on purpose; the panel is assumed to sit behind
// a trusted network with a single operator.
type AdminHandler struct {
	Catalog *services.CatalogService
	Orders  *repos.OrderRepo
}

func (h *AdminHandler) page(c *fiber.Ctx, message string) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "admin.catalog.load", err, nil)
		return fiber.ErrInternalServerError
	}
	orders, err := h.Orders.ListRecent(validate.Limit(c.Query("limit"), adminOrderLimit))
	if err != nil {
		applog.Error(c, "admin.orders.list", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "admin", fiber.Map{"Products": products, "Orders": orders, "Message": message})
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return h.page(c, "")
}

// POST /admin — add one product. A blank name re-renders the page without a
// message; everything else is coerced, not rejected.
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	p, err := h.Catalog.AddProduct(
		c.FormValue("name"),
		c.FormValue("price"),
		c.FormValue("image"),
		c.FormValue("description"),
	)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return h.page(c, "")
		}
		applog.Error(c, "admin.product.add", err, nil)
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product_id": p.ID, "name": p.Name})
	return h.page(c, "Product added.")
}

// POST /admin/delete/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	if err := h.Catalog.RemoveProduct(id); err != nil {
		applog.Error(c, "admin.product.delete", err, map[string]any{"product_id": id})
		return fiber.ErrInternalServerError
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}
