package handlers

import "github.com/gofiber/fiber/v2"

// render wraps c.Render with the view state every page wants: the cart badge
// count (set by middleware in main) and the CSRF token for form pages.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if n, ok := c.Locals("cart_count").(int); ok {
		data["CartCount"] = n
	}
	if tok, ok := c.Locals("CSRFToken").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
